package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"geo-catalog-service/internal/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	default:
		// Store failures must never masquerade as an empty result set.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
