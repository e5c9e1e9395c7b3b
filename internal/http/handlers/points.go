package handlers

import (
	"errors"
	"net/http"

	"points_ledger/internal/domain"
	"points_ledger/internal/http/middleware"
	"points_ledger/internal/service"

	"github.com/gin-gonic/gin"
)

type pointsRequest struct {
	Amount int64  `json:"amount"`
	Type   string `json:"type"`
}

// Points applies an add or subtract adjustment to the caller's balance.
// Expects {amount:int, type:"add"|"subtract"}.
func (h *Handler) Points(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req pointsRequest
	if err := c.BindJSON(&req); err != nil {
		// non-numeric and fractional amounts fail binding
		middleware.PointsOperations.WithLabelValues("invalid", "invalid_input").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input"})
		return
	}

	ctx := c.Request.Context()
	newBalance, err := h.LedgerService.Adjust(ctx, userID, req.Amount, req.Type)
	if err != nil {
		kind := req.Type
		if kind != domain.KindAdd && kind != domain.KindSubtract {
			kind = "invalid"
		}
		switch {
		case errors.Is(err, service.ErrInvalidKind), errors.Is(err, service.ErrInvalidAmount):
			middleware.PointsOperations.WithLabelValues(kind, "invalid_input").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input"})
		case errors.Is(err, service.ErrUserNotFound):
			middleware.PointsOperations.WithLabelValues(kind, "user_not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		case errors.Is(err, service.ErrInsufficientBalance):
			middleware.PointsOperations.WithLabelValues(kind, "insufficient_balance").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient_balance"})
		default:
			middleware.PointsOperations.WithLabelValues(kind, "internal_error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		}
		return
	}

	middleware.PointsOperations.WithLabelValues(req.Type, "success").Inc()

	message := "Points added successfully"
	if req.Type == domain.KindSubtract {
		message = "Points subtracted successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"newBalance": newBalance,
	})
}
