// Package models defines the core domain models for Bill-Split.
//
// # Models
//
//   - Group: a named set of members (identified by email) that owns a ledger
//   - Expense: an amount paid by one member and split across the group
//   - Payment: money that changed hands between two members to settle up
//
// Balances and settle-up suggestions are derived from a group's ledger on every
// read (see package calculator) and are never stored.
//
// # Design Principles
//
// 1. **Integer money**: every amount is an int64 number of cents
// 2. **Append-only ledger**: expenses and payments are never mutated once recorded
// 3. **Emails as keys**: members are referenced by email everywhere in the ledger
// 4. **Avoid circular references**: use ID strings instead of pointers for relationships
package models
