// Package export renders balance reports, settlement plans, and expense logs
// as CSV for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/models"
)

// WriteBalances writes one row per participant: name, signed amount.
func WriteBalances(w io.Writer, balances []models.Balance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "balance"}); err != nil {
		return fmt.Errorf("failed to write balances header: %w", err)
	}
	for _, b := range balances {
		if err := cw.Write([]string{b.Name, money(b.Amount)}); err != nil {
			return fmt.Errorf("failed to write balance row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSettlements writes one row per payment: debtor, creditor, amount.
func WriteSettlements(w io.Writer, settlements []models.Settlement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"debtor", "creditor", "amount"}); err != nil {
		return fmt.Errorf("failed to write settlements header: %w", err)
	}
	for _, s := range settlements {
		if err := cw.Write([]string{s.Debtor, s.Creditor, money(s.Amount)}); err != nil {
			return fmt.Errorf("failed to write settlement row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteExpenses writes an event's expense log, one row per expense.
func WriteExpenses(w io.Writer, expenses []models.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "description", "amount", "payer", "participants"}); err != nil {
		return fmt.Errorf("failed to write expenses header: %w", err)
	}
	for _, e := range expenses {
		row := []string{
			time.Unix(e.CreatedAt, 0).UTC().Format("2006-01-02 15:04:05"),
			e.Description,
			money(e.Amount),
			e.Payer,
			strings.Join(e.Participants, ", "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write expense row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAllExpenses writes the expenses of every event into one dump,
// prefixed by the owning event.
func WriteAllExpenses(w io.Writer, events []*models.Event) error {
	cw := csv.NewWriter(w)
	header := []string{"event_id", "event_name", "expense_id", "description", "amount", "payer", "participants"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, ev := range events {
		for _, e := range ev.Expenses {
			row := []string{
				ev.ID,
				ev.Name,
				e.ID,
				e.Description,
				money(e.Amount),
				e.Payer,
				strings.Join(e.Participants, ";"),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write export row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// money formats a monetary amount with 2 decimal places.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
