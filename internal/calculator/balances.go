package calculator

import (
	"fmt"
	"math"

	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/models"
)

// round2 rounds a monetary amount to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeBalances folds an event's expense list into a signed net balance per
// participant. Positive means the participant is owed money, negative means
// they owe.
//
// Algorithm, per expense:
//   - explicit shares: each named participant's balance drops by their share,
//     the payer's balance rises by the full amount
//   - equal split: amount/n is subtracted from each of the n participants,
//     the full amount is added to the payer
//
// A payer who also shares the expense nets out correctly: their own share is
// both added (as payer) and subtracted (as participant). The fold is
// commutative, so expense order never affects the result. Balances are
// rounded to 2 decimals only after the full fold, and the rounded values sum
// to zero (conservation of money).
//
// Callers must validate expenses before invoking this function; the only
// malformed input handled here is an equal split with zero participants,
// which is rejected rather than silently skipped.
func ComputeBalances(participants []string, expenses []models.Expense) (map[string]float64, error) {
	balances := make(map[string]float64, len(participants))
	for _, name := range participants {
		balances[name] = 0
	}

	for _, e := range expenses {
		if e.EqualSplit() {
			n := len(e.Participants)
			if n == 0 {
				return nil, fmt.Errorf("expense %q: %w", e.Description, models.ErrNoParticipants)
			}
			share := e.Amount / float64(n)
			for _, name := range e.Participants {
				balances[name] -= share
			}
			balances[e.Payer] += e.Amount
		} else {
			for name, share := range e.Shares {
				balances[name] -= share
			}
			balances[e.Payer] += e.Amount
		}
	}

	for name, v := range balances {
		balances[name] = round2(v)
	}
	return balances, nil
}
