// Package models defines the core domain models for SplitBill.
//
// # Models
//
//   - Event: a bounded context owning one participant list and one expense list
//   - Participant: an event member, identified by a unique display name
//   - Expense: a recorded cost with a payer, cost-sharing participants, and a
//     split policy (equal, or explicit absolute shares)
//   - Balance: a derived signed net amount per participant (never persisted)
//   - Settlement: a derived debtor-to-creditor payment instruction (never persisted)
//
// Participants are identified by name strings within their event. Expenses
// reference participants by name only; the event exclusively owns both lists.
//
// # Design principles
//
//  1. Derived values (Balance, Settlement) are plain value types produced by
//     the calculator package, never entity state
//  2. Input validation lives next to the data it protects: Expense.Validate
//     enforces every invariant the balance engine assumes
//  3. Avoid circular references: relationships use ID strings, not pointers
package models
