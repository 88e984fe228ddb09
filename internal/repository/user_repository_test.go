package repository

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcore/face-auth/internal/model"
)

func newMockRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepo(db), mock
}

func TestUserRepoInsert(t *testing.T) {
	repo, mock := newMockRepo(t)

	u := model.NewUser("A", "alice", "alice@x.com", "555", "", "")
	u.PasswordHash = "$2a$10$hash"

	mock.ExpectExec("INSERT INTO users").
		WithArgs("A", "alice", "alice@x.com", "555", "$2a$10$hash", u.UUID).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Insert(context.Background(), u))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoInsertDuplicateKey(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice@x.com' for key 'uq_users_email'"))

	err := repo.Insert(context.Background(), model.NewUser("A", "alice", "alice@x.com", "555", "", ""))
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoInsertOtherErrorPassesThrough(t *testing.T) {
	repo, mock := newMockRepo(t)

	broken := errors.New("Error 1205 (HY000): Lock wait timeout exceeded")
	mock.ExpectExec("INSERT INTO users").WillReturnError(broken)

	err := repo.Insert(context.Background(), model.NewUser("A", "alice", "alice@x.com", "555", "", ""))
	assert.ErrorIs(t, err, broken)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func userRows(u *model.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"name", "username", "email", "phone", "password_hash", "uuid"}).
		AddRow(u.Name, u.Username, u.Email, u.Phone, u.PasswordHash, u.UUID)
}

func TestUserRepoFindByEmailNormalizes(t *testing.T) {
	repo, mock := newMockRepo(t)

	alice := model.NewUser("A", "alice", "alice@x.com", "555", "", "")
	alice.PasswordHash = "$2a$10$hash"

	// Mixed case and padding must be normalized before the query.
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email=").
		WithArgs("alice@x.com").
		WillReturnRows(userRows(alice))

	got, err := repo.FindByEmail(context.Background(), "  Alice@X.com ")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, alice.UUID, got.UUID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoFindMisses(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		lookup func(*UserRepo) (*model.User, error)
	}{
		{
			name:  "by email",
			query: "SELECT (.+) FROM users WHERE email=",
			lookup: func(r *UserRepo) (*model.User, error) {
				return r.FindByEmail(context.Background(), "gone@x.com")
			},
		},
		{
			name:  "by username",
			query: "SELECT (.+) FROM users WHERE username=",
			lookup: func(r *UserRepo) (*model.User, error) {
				return r.FindByUsername(context.Background(), "nobody")
			},
		},
		{
			name:  "by uuid",
			query: "SELECT (.+) FROM users WHERE uuid=",
			lookup: func(r *UserRepo) (*model.User, error) {
				return r.FindByUUID(context.Background(), "no-such-id")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			mock.ExpectQuery(tt.query).
				WillReturnRows(sqlmock.NewRows([]string{"name", "username", "email", "phone", "password_hash", "uuid"}))

			u, err := tt.lookup(repo)
			assert.Nil(t, u)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{
			name: "duplicate entry",
			err:  errors.New("Error 1062 (23000): Duplicate entry 'alice' for key 'uq_users_username'"),
			want: true,
		},
		{name: "unrelated error", err: errors.New("Error 1205 (HY000): Lock wait timeout exceeded"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateKey(tt.err))
		})
	}
}
