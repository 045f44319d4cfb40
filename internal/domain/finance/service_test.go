package finance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	items map[uuid.UUID]*Transaction
}

func (m *mockRepo) Create(_ context.Context, tr *Transaction) error {
	if tr.ID == uuid.Nil {
		tr.ID = uuid.New()
	}
	m.items[tr.ID] = tr
	return nil
}
func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Transaction, error) {
	tr, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return tr, nil
}
func (m *mockRepo) Update(_ context.Context, tr *Transaction) error {
	m.items[tr.ID] = tr
	return nil
}
func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.items, id)
	return nil
}
func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Transaction, int, error) {
	return nil, 0, nil
}

func TestSigned(t *testing.T) {
	income := &Transaction{Kind: KindIncome, AmountCents: 5000}
	if income.Signed() != 5000 {
		t.Errorf("income Signed() = %d, want 5000", income.Signed())
	}
	expense := &Transaction{Kind: KindExpense, AmountCents: 5000}
	if expense.Signed() != -5000 {
		t.Errorf("expense Signed() = %d, want -5000", expense.Signed())
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&mockRepo{items: map[uuid.UUID]*Transaction{}})

	tests := []struct {
		name    string
		tr      *Transaction
		wantErr bool
	}{
		{"valid income", &Transaction{Description: "Treatment", AmountCents: 12000, Kind: KindIncome, BookedAt: time.Now()}, false},
		{"valid expense", &Transaction{Description: "Materials", AmountCents: 4500, Kind: KindExpense, BookedAt: time.Now()}, false},
		{"zero amount", &Transaction{Description: "x", AmountCents: 0, Kind: KindIncome}, true},
		{"negative amount", &Transaction{Description: "x", AmountCents: -100, Kind: KindExpense}, true},
		{"bad kind", &Transaction{Description: "x", AmountCents: 100, Kind: "transfer"}, true},
		{"missing description", &Transaction{AmountCents: 100, Kind: KindIncome}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(context.Background(), tt.tr)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
