package handler

import (
	"github.com/gin-gonic/gin"

	"geo-catalog-service/internal/usecase"
)

type Handler struct {
	entryUC *usecase.EntryUseCase
}

func New(entryUC *usecase.EntryUseCase) *Handler {
	return &Handler{entryUC: entryUC}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Browsing surface
	r.GET("/", h.Index)
	r.GET("/entry/:id", h.EntryDetail)

	// JSON API
	r.GET("/api/search", h.APISearch)
}
