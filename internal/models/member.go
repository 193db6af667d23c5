package models

import "github.com/shopspring/decimal"

// Member is a household person.
type Member struct {
	// ID is assigned by storage on insert.
	ID int64

	// Name is trimmed and title-cased, unique across members and immutable
	// once created.
	Name string

	// EarningStatus marks the member as earning.
	EarningStatus bool

	// Earnings is the monthly earning amount. Never negative.
	Earnings decimal.Decimal

	// CreatedAt is the Unix timestamp when the member was added.
	CreatedAt int64
}
