package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcore/face-auth/internal/model"
)

func newMockEmbeddingRepo(t *testing.T) (*EmbeddingRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewEmbeddingRepo(db), mock
}

func TestEmbeddingRepoSaveMarshalsVector(t *testing.T) {
	repo, mock := newMockEmbeddingRepo(t)

	mock.ExpectExec("INSERT INTO user_embeddings").
		WithArgs("u-1", "[0.1,0.25]").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), model.Embedding{UserID: "u-1", Vector: []float64{0.1, 0.25}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmbeddingRepoGetRoundTrip(t *testing.T) {
	repo, mock := newMockEmbeddingRepo(t)

	mock.ExpectQuery("SELECT embedding FROM user_embeddings WHERE user_id=").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"embedding"}).AddRow("[0.5,0.25]"))

	e, err := repo.Get(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", e.UserID)
	assert.Equal(t, []float64{0.5, 0.25}, e.Vector)
}

func TestEmbeddingRepoGetMissing(t *testing.T) {
	repo, mock := newMockEmbeddingRepo(t)

	mock.ExpectQuery("SELECT embedding FROM user_embeddings WHERE user_id=").
		WithArgs("u-404").
		WillReturnRows(sqlmock.NewRows([]string{"embedding"}))

	e, err := repo.Get(context.Background(), "u-404")
	assert.Nil(t, e)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmbeddingRepoGetCorruptVector(t *testing.T) {
	repo, mock := newMockEmbeddingRepo(t)

	mock.ExpectQuery("SELECT embedding FROM user_embeddings WHERE user_id=").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"embedding"}).AddRow("not-json"))

	e, err := repo.Get(context.Background(), "u-1")
	assert.Nil(t, e)
	assert.Error(t, err)
}
