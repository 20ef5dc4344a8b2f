package external

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// MemoryWallet keeps balances and holds per user. Holds reduce the spendable amount.
type MemoryWallet struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	holds    map[string]decimal.Decimal
}

// NewMemoryWallet creates an empty wallet
func NewMemoryWallet() *MemoryWallet {
	return &MemoryWallet{
		balances: make(map[string]decimal.Decimal),
		holds:    make(map[string]decimal.Decimal),
	}
}

// Deposit credits a user's balance
func (w *MemoryWallet) Deposit(userID string, amount decimal.Decimal) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balances[userID] = w.balances[userID].Add(amount)
}

// Balance returns the balance and the amount currently held
func (w *MemoryWallet) Balance(userID string) (balance, held decimal.Decimal) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balances[userID], w.holds[userID]
}

func (w *MemoryWallet) HoldFunds(ctx context.Context, userID string, amount decimal.Decimal) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	available := w.balances[userID].Sub(w.holds[userID])
	if available.LessThan(amount) {
		return fmt.Errorf("hold %s for %s: %w", amount, userID, ErrInsufficientFunds)
	}
	w.holds[userID] = w.holds[userID].Add(amount)
	return nil
}

// Charge debits amount, consuming any matching hold first
func (w *MemoryWallet) Charge(ctx context.Context, userID string, amount decimal.Decimal) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.balances[userID].LessThan(amount) {
		return fmt.Errorf("charge %s to %s: %w", amount, userID, ErrInsufficientFunds)
	}
	w.balances[userID] = w.balances[userID].Sub(amount)
	w.holds[userID] = decimal.Max(decimal.Zero, w.holds[userID].Sub(amount))
	return nil
}

func (w *MemoryWallet) ReleaseHold(ctx context.Context, userID string, amount decimal.Decimal) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.holds[userID] = decimal.Max(decimal.Zero, w.holds[userID].Sub(amount))
	return nil
}
