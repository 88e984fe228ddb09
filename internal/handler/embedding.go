package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/authcore/face-auth/internal/model"
	"github.com/authcore/face-auth/internal/repository"
)

// EmbeddingHandler exposes the face-embedding storage path. It stores
// and serves vectors for the external face pipeline; no matching or
// comparison happens here.
type EmbeddingHandler struct {
	Store repository.EmbeddingStore
}

func NewEmbeddingHandler(store repository.EmbeddingStore) *EmbeddingHandler {
	return &EmbeddingHandler{Store: store}
}

// Save stores an embedding vector for a user.
func (h *EmbeddingHandler) Save(c echo.Context) error {
	var e model.Embedding
	if err := c.Bind(&e); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "invalid body"})
	}
	if e.UserID == "" || len(e.Vector) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "user_id and embedding required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Save(ctx, e); err != nil {
		c.Logger().Errorf("embedding save failed for %s: %v", e.UserID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "embedding save failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": true, "message": "Embedding stored"})
}

// Get returns the stored embedding for a user, or 404 when the
// pipeline has not produced one yet.
func (h *EmbeddingHandler) Get(c echo.Context) error {
	userID := c.Param("user_id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e, err := h.Store.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"status": false, "message": "embedding not found"})
	}
	if err != nil {
		c.Logger().Errorf("embedding fetch failed for %s: %v", userID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "embedding fetch failed"})
	}
	return c.JSON(http.StatusOK, e)
}
