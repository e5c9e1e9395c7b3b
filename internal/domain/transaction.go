package domain

import "time"

const (
	KindAdd      = "add"
	KindSubtract = "subtract"
)

// Transaction is an immutable ledger record. Amount is signed: positive for
// add, negative for subtract.
type Transaction struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Amount    int64     `db:"amount" json:"amount"`
	Kind      string    `db:"kind" json:"type"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
