package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parsePagination resolves limit/offset query values. Absent, non-numeric and
// negative values fall back to the defaults; limit is capped.
func (h *Handler) parsePagination(limitStr, offsetStr string) (limit, offset int) {
	limit = h.Config.HistoryLimit
	if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
		limit = n
	}
	if limit > h.Config.HistoryMaxLimit {
		limit = h.Config.HistoryMaxLimit
	}

	offset = 0
	if n, err := strconv.Atoi(offsetStr); err == nil && n > 0 {
		offset = n
	}
	return limit, offset
}

// History returns the caller's ledger records, newest first
func (h *Handler) History(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit, offset := h.parsePagination(c.Query("limit"), c.Query("offset"))

	ctx := c.Request.Context()
	transactions, total, err := h.LedgerService.History(ctx, userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	out := make([]map[string]interface{}, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, map[string]interface{}{
			"id":         tx.ID,
			"amount":     tx.Amount,
			"type":       tx.Kind,
			"created_at": tx.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": out,
		"pagination": gin.H{
			"total":  total,
			"limit":  limit,
			"offset": offset,
		},
	})
}
