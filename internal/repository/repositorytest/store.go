// Package repositorytest provides in-memory store implementations for
// tests. MemoryUserStore enforces the same email/username/uuid
// uniqueness the MySQL schema does, so the write-time conflict path is
// testable without a database.
package repositorytest

import (
	"context"

	"github.com/authcore/face-auth/internal/model"
	"github.com/authcore/face-auth/internal/repository"
)

// MemoryUserStore implements repository.UserStore over a slice. The
// counters and forced errors let tests assert side-effect contracts:
// how often the store was probed, that a failed validation never
// inserted, or what happens when an insert loses a race.
type MemoryUserStore struct {
	Users     []*model.User
	Finds     int   // number of Find* calls
	Inserts   int   // number of Insert calls
	FindErr   error // forced Find* result, simulates a broken store
	InsertErr error // forced Insert result, simulates a lost race
}

// NewMemoryUserStore returns a store pre-seeded with the given users.
func NewMemoryUserStore(seed ...*model.User) *MemoryUserStore {
	return &MemoryUserStore{Users: seed}
}

func (s *MemoryUserStore) find(match func(*model.User) bool) (*model.User, error) {
	s.Finds++
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	for _, u := range s.Users {
		if match(u) {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return s.find(func(u *model.User) bool { return u.Email == email })
}

func (s *MemoryUserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	return s.find(func(u *model.User) bool { return u.Username == username })
}

func (s *MemoryUserStore) FindByUUID(_ context.Context, id string) (*model.User, error) {
	return s.find(func(u *model.User) bool { return u.UUID == id })
}

func (s *MemoryUserStore) Insert(_ context.Context, u *model.User) error {
	s.Inserts++
	if s.InsertErr != nil {
		return s.InsertErr
	}
	for _, ex := range s.Users {
		if ex.Email == u.Email || ex.Username == u.Username || ex.UUID == u.UUID {
			return repository.ErrDuplicate
		}
	}
	cp := *u
	s.Users = append(s.Users, &cp)
	return nil
}

// MemoryEmbeddingStore implements repository.EmbeddingStore over a map
// keyed by user id.
type MemoryEmbeddingStore struct {
	Saved   map[string][]float64
	SaveErr error // forced Save result
}

func NewMemoryEmbeddingStore() *MemoryEmbeddingStore {
	return &MemoryEmbeddingStore{Saved: make(map[string][]float64)}
}

func (s *MemoryEmbeddingStore) Save(_ context.Context, e model.Embedding) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Saved[e.UserID] = e.Vector
	return nil
}

func (s *MemoryEmbeddingStore) Get(_ context.Context, userID string) (*model.Embedding, error) {
	v, ok := s.Saved[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &model.Embedding{UserID: userID, Vector: v}, nil
}
