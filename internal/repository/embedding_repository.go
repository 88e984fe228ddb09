package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/authcore/face-auth/internal/model"
)

// EmbeddingStore holds face-embedding vectors keyed by user id. No
// comparison happens on this side; the store is the hand-off point
// between the external face pipeline and a future embedding-based
// login flow.
type EmbeddingStore interface {
	Save(ctx context.Context, e model.Embedding) error
	Get(ctx context.Context, userID string) (*model.Embedding, error)
}

type EmbeddingRepo struct{ DB *sql.DB }

func NewEmbeddingRepo(db *sql.DB) *EmbeddingRepo { return &EmbeddingRepo{DB: db} }

// Save upserts the vector for a user. The vector is stored as a JSON
// array in a TEXT column; user_id carries a unique key so a re-run of
// the pipeline replaces the previous embedding instead of stacking rows.
func (r *EmbeddingRepo) Save(ctx context.Context, e model.Embedding) error {
	raw, err := json.Marshal(e.Vector)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO user_embeddings (user_id, embedding) VALUES (?,?) "+
			"ON DUPLICATE KEY UPDATE embedding=VALUES(embedding)",
		e.UserID, string(raw))
	return err
}

// Get fetches the stored embedding for a user, or ErrNotFound.
func (r *EmbeddingRepo) Get(ctx context.Context, userID string) (*model.Embedding, error) {
	var raw string
	err := r.DB.QueryRowContext(ctx,
		"SELECT embedding FROM user_embeddings WHERE user_id=? LIMIT 1",
		userID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	e := model.Embedding{UserID: userID}
	if err := json.Unmarshal([]byte(raw), &e.Vector); err != nil {
		return nil, err
	}
	return &e, nil
}
