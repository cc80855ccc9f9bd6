package calculator

import (
	"math"
	"sort"

	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/models"
)

const (
	// settledEpsilon is the dead-zone around zero: balances within it are
	// treated as already settled and never enter the plan.
	settledEpsilon = 0.005

	// exhaustedEpsilon is the threshold below which a party's remaining
	// amount counts as paid off and the cursor advances past them.
	exhaustedEpsilon = 0.01
)

// party is one side of the matching: a participant with a positive amount
// still to pay (debtor) or to receive (creditor).
type party struct {
	name   string
	amount float64
}

// ComputeSettlements turns a balance map into an ordered payment plan that
// zeroes every balance, using greedy largest-magnitude matching.
//
// Creditors (balance > settledEpsilon) and debtors (balance < -settledEpsilon)
// are each sorted by descending amount; the largest debtor repeatedly pays
// min(debt, credit) to the largest creditor, and a cursor advances whenever
// its party's remainder drops below exhaustedEpsilon. The plan length never
// exceeds min(#creditors, #debtors).
//
// Ties in magnitude break on name so the plan is reproducible regardless of
// map iteration order. An all-settled input yields an empty plan.
func ComputeSettlements(balances map[string]float64) []models.Settlement {
	var creditors, debtors []party
	for name, amount := range balances {
		switch {
		case amount > settledEpsilon:
			creditors = append(creditors, party{name: name, amount: amount})
		case amount < -settledEpsilon:
			debtors = append(debtors, party{name: name, amount: -amount})
		}
	}

	byAmountDesc := func(parties []party) func(i, j int) bool {
		return func(i, j int) bool {
			if parties[i].amount != parties[j].amount {
				return parties[i].amount > parties[j].amount
			}
			return parties[i].name < parties[j].name
		}
	}
	sort.Slice(creditors, byAmountDesc(creditors))
	sort.Slice(debtors, byAmountDesc(debtors))

	var settlements []models.Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		pay := math.Min(debtors[i].amount, creditors[j].amount)
		settlements = append(settlements, models.Settlement{
			Debtor:   debtors[i].name,
			Creditor: creditors[j].name,
			Amount:   round2(pay),
		})

		debtors[i].amount = round2(debtors[i].amount - pay)
		creditors[j].amount = round2(creditors[j].amount - pay)

		// Both cursors may advance in the same step when pay exhausts
		// a debtor and a creditor with equal remainders.
		if debtors[i].amount < exhaustedEpsilon {
			i++
		}
		if creditors[j].amount < exhaustedEpsilon {
			j++
		}
	}
	return settlements
}
