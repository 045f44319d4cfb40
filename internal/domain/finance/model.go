package finance

import (
	"time"

	"github.com/google/uuid"
)

// Transaction kinds.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Transaction maps to the transaction table. Amounts are stored in
// cents to avoid floating point drift in sums.
type Transaction struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Description string    `db:"description" json:"description"`
	AmountCents int64     `db:"amount_cents" json:"amount_cents"`
	Kind        string    `db:"kind" json:"kind"`
	Category    *string   `db:"category" json:"category,omitempty"`
	BookedAt    time.Time `db:"booked_at" json:"booked_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Signed returns the amount with expenses negated, for balance sums.
func (t *Transaction) Signed() int64 {
	if t.Kind == KindExpense {
		return -t.AmountCents
	}
	return t.AmountCents
}
