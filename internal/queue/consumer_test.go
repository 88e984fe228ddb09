package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcore/face-auth/internal/repository/repositorytest"
)

func TestHandleMessage(t *testing.T) {
	store := repositorytest.NewMemoryEmbeddingStore()

	err := handleMessage(store, []byte(`{"user_id":"u-1","embedding":[0.1,0.2]}`))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2}, store.Saved["u-1"])
}

func TestHandleMessageBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{{{`},
		{name: "missing user id", body: `{"embedding":[0.1]}`},
		{name: "empty vector", body: `{"user_id":"u-1","embedding":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := repositorytest.NewMemoryEmbeddingStore()
			err := handleMessage(store, []byte(tt.body))
			assert.ErrorIs(t, err, errBadPayload)
			assert.Empty(t, store.Saved)
		})
	}
}

func TestHandleMessageStoreFailure(t *testing.T) {
	store := &repositorytest.MemoryEmbeddingStore{SaveErr: context.DeadlineExceeded}
	err := handleMessage(store, []byte(`{"user_id":"u-1","embedding":[0.1]}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errBadPayload, "a store failure must stay requeueable")
}
