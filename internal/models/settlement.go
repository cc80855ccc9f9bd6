package models

// Balance is one row of a derived balance report. Positive means the
// participant is owed money, negative means they owe. Balances are always
// computed fresh from the full expense list, never persisted.
type Balance struct {
	// Name is the participant this row belongs to.
	Name string

	// Amount is the signed net balance, rounded to 2 decimal places.
	Amount float64
}

// Settlement is a single directed payment instruction: the debtor pays the
// creditor the given amount. Settlements are derived from a balance snapshot
// and not stored.
type Settlement struct {
	// Debtor is the participant making the payment.
	Debtor string

	// Creditor is the participant receiving the payment.
	Creditor string

	// Amount is the payment amount, rounded to 2 decimal places.
	Amount float64
}
