// Package models defines the core domain models for PairShare.
//
// # Models
//
//   - Expense: a shared cost paid by one of the two partners
//   - Settlement: a real-world transfer that reduces an outstanding balance
//   - Balance: the derived net position, recomputed from full history
//   - Category: the fixed expense category enum
//
// # Design Principles
//
//  1. **Minor units everywhere**: all monetary amounts are int64 cents.
//     Floating point never touches stored money.
//  2. **Two parties only**: the ledger is between exactly PartyA and PartyB.
//     The party is an enum, not a user reference.
//  3. **Derived, never stored**: Balance is always recomputed from the
//     Expense+Settlement history, so there is no cached value to drift.
//  4. **Avoid circular references**: relationships use ID strings.
package models
