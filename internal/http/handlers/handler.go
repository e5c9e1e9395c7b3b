package handlers

import (
	"points_ledger/internal/repository"
	"points_ledger/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HandlerConfig holds pagination limits for the history endpoint
type HandlerConfig struct {
	HistoryLimit    int
	HistoryMaxLimit int
}

type Handler struct {
	DB            *pgxpool.Pool
	LedgerService *service.LedgerService
	UserRepo      *repository.UserRepository
	Config        HandlerConfig
}

func NewHandler(db *pgxpool.Pool, cfg HandlerConfig) *Handler {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 10
	}
	if cfg.HistoryMaxLimit <= 0 {
		cfg.HistoryMaxLimit = 100
	}
	return &Handler{
		DB:            db,
		LedgerService: service.NewLedgerService(db),
		UserRepo:      repository.NewUserRepository(db),
		Config:        cfg,
	}
}

// getUserID извлекает user_id из контекста Gin
func getUserID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
