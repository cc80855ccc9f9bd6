package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/models"
)

// AddExpense persists a new expense, its cost-sharing participants, and any
// explicit shares in one transaction.
func (s *SQLiteStore) AddExpense(ctx context.Context, expense *models.Expense) error {
	if err := s.eventExists(ctx, expense.EventID); err != nil {
		return err
	}

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO expenses (id, event_id, description, amount, payer, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		expense.ID, expense.EventID, expense.Description, expense.Amount, expense.Payer, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, name := range expense.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_participants (expense_id, name) VALUES (?, ?)",
			expense.ID, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense participant: %w", err)
		}
	}

	for name, share := range expense.Shares {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_shares (expense_id, name, share) VALUES (?, ?, ?)",
			expense.ID, name, share,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListExpenses retrieves all expenses of an event in creation order.
func (s *SQLiteStore) ListExpenses(ctx context.Context, eventID string) ([]models.Expense, error) {
	if err := s.eventExists(ctx, eventID); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	return listExpenses(ctx, tx, eventID)
}

// listExpenses reads an event's expenses inside the given transaction.
func listExpenses(ctx context.Context, tx *sql.Tx, eventID string) ([]models.Expense, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT id, event_id, description, amount, payer, created_at FROM expenses WHERE event_id = ? ORDER BY created_at, id",
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.EventID, &e.Description, &e.Amount, &e.Payer, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for i := range expenses {
		e := &expenses[i]

		pRows, err := tx.QueryContext(ctx,
			"SELECT name FROM expense_participants WHERE expense_id = ? ORDER BY name",
			e.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get expense participants: %w", err)
		}
		for pRows.Next() {
			var name string
			if err := pRows.Scan(&name); err != nil {
				pRows.Close()
				return nil, fmt.Errorf("failed to scan expense participant: %w", err)
			}
			e.Participants = append(e.Participants, name)
		}
		pRows.Close()
		if err := pRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate expense participants: %w", err)
		}

		sRows, err := tx.QueryContext(ctx,
			"SELECT name, share FROM expense_shares WHERE expense_id = ?",
			e.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get expense shares: %w", err)
		}
		for sRows.Next() {
			var name string
			var share float64
			if err := sRows.Scan(&name, &share); err != nil {
				sRows.Close()
				return nil, fmt.Errorf("failed to scan expense share: %w", err)
			}
			if e.Shares == nil {
				e.Shares = make(map[string]float64)
			}
			e.Shares[name] = share
		}
		sRows.Close()
		if err := sRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate expense shares: %w", err)
		}
	}

	return expenses, nil
}
