// Package calculator implements the balance engine: folding an event's
// expenses into net balances per participant and deriving a
// minimal-transaction settlement plan from a balance snapshot.
//
// Both operations are pure functions over their inputs. They keep no state
// between calls, perform no I/O, and assume the caller has already validated
// the expense list (see models.Expense.Validate); concurrent use is safe as
// long as each call receives its own immutable snapshot.
package calculator
