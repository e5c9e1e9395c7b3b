package service

import (
	"context"
	"errors"

	"points_ledger/internal/domain"
	"points_ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidKind         = errors.New("kind must be add or subtract")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// LedgerService owns every balance mutation. A user's balance changes only
// through Adjust, which commits the balance update and the ledger record as
// one database transaction.
type LedgerService struct {
	db              *pgxpool.Pool
	transactionRepo *repository.TransactionRepository
}

func NewLedgerService(db *pgxpool.Pool) *LedgerService {
	return &LedgerService{
		db:              db,
		transactionRepo: repository.NewTransactionRepository(db),
	}
}

// GetBalance returns the user's current balance
func (s *LedgerService) GetBalance(ctx context.Context, userID int64) (int64, error) {
	var balance int64
	err := s.db.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return balance, nil
}

// Adjust applies an add or subtract of amount points to the user's balance
// and appends the matching ledger record, atomically. The row lock taken by
// FOR UPDATE serializes concurrent adjustments on the same user, so the
// overdraw check always runs against the latest committed balance. A
// rejection is terminal; nothing is retried and no partial state survives.
func (s *LedgerService) Adjust(ctx context.Context, userID int64, amount int64, kind string) (newBalance int64, err error) {
	if kind != domain.KindAdd && kind != domain.KindSubtract {
		return 0, ErrInvalidKind
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	signed := amount
	if kind == domain.KindSubtract {
		signed = -amount
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock the row and check against the locked value
	var balance int64
	err = tx.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	if balance+signed < 0 {
		return 0, ErrInsufficientBalance
	}

	err = tx.QueryRow(ctx, `UPDATE users SET balance = balance + $1 WHERE id = $2 RETURNING balance`, signed, userID).Scan(&newBalance)
	if err != nil {
		return 0, err
	}

	record := &domain.Transaction{
		UserID: userID,
		Amount: signed,
		Kind:   kind,
	}
	if err = s.transactionRepo.CreateWithTx(ctx, tx, record); err != nil {
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}

	return newBalance, nil
}

// History returns a page of the user's ledger records, newest first, plus
// the total record count for the user
func (s *LedgerService) History(ctx context.Context, userID int64, limit, offset int) ([]*domain.Transaction, int64, error) {
	transactions, err := s.transactionRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.transactionRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}
