package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcore/face-auth/internal/repository/repositorytest"
)

func TestEmbeddingSave(t *testing.T) {
	store := repositorytest.NewMemoryEmbeddingStore()
	h := NewEmbeddingHandler(store)

	rec, body := doJSON(t, h.Save, http.MethodPost, "/embeddings",
		`{"user_id":"u-1","embedding":[0.1,0.2,0.3]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, store.Saved["u-1"])
}

func TestEmbeddingSaveRejectsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing user id", payload: `{"embedding":[0.1]}`},
		{name: "missing vector", payload: `{"user_id":"u-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := repositorytest.NewMemoryEmbeddingStore()
			h := NewEmbeddingHandler(store)

			rec, _ := doJSON(t, h.Save, http.MethodPost, "/embeddings", tt.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, store.Saved)
		})
	}
}

func getEmbedding(t *testing.T, h *EmbeddingHandler, userID string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/embeddings/"+userID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues(userID)
	require.NoError(t, h.Get(c))
	return rec
}

func TestEmbeddingGet(t *testing.T) {
	store := &repositorytest.MemoryEmbeddingStore{Saved: map[string][]float64{"u-1": {0.5, 0.25}}}
	h := NewEmbeddingHandler(store)

	rec := getEmbedding(t, h, "u-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":"u-1"`)
	assert.Contains(t, rec.Body.String(), `0.25`)
}

func TestEmbeddingGetMissing(t *testing.T) {
	h := NewEmbeddingHandler(repositorytest.NewMemoryEmbeddingStore())

	rec := getEmbedding(t, h, "u-404")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
