// Package models defines the core domain models for the expense tracker.
//
// # Models
//
//   - Member: a household person with optional recurring monthly earnings
//   - Expense: a single dated outflow attributed to a person
//
// # Relationships
//
// Expenses reference their person by name string, not by member ID. Deleting a
// member leaves that person's expenses in place, and an expense may name a person
// that was never added as a member. Tests must not assume referential integrity.
//
// # Money
//
// Earnings and amounts are decimal.Decimal so that totals add up exactly.
//
// # Enumerations
//
// Period, Category and ExpenseType list the values offered by the dashboard's
// pickers. The storage layer accepts any string; callers that take raw user input
// validate with the Valid methods.
package models
