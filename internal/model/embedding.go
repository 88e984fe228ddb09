package model

// Embedding is a face-embedding vector tied to a user. The authentication
// flow stores and serves these records but performs no comparison on them;
// matching lives in the external face pipeline.
//
// Fields:
//
//	UserID – UUID of the owning user.
//	Vector – embedding values as produced by the pipeline.
type Embedding struct {
	UserID string    `json:"user_id"`
	Vector []float64 `json:"embedding"`
}
