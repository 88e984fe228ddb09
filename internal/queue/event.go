// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published after a registration is persisted.
// The external face pipeline consumes it to start embedding generation
// for the new account; other consumers can log or notify without
// querying the primary database.
type UserRegisteredEvent struct {
	UUID         string `json:"uuid"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at"`
}

// EmbeddingGeneratedEvent arrives from the face pipeline once it has
// produced an embedding vector for a user. The background consumer
// persists it through the embedding store.
type EmbeddingGeneratedEvent struct {
	UserID    string    `json:"user_id"`
	Embedding []float64 `json:"embedding"`
}
