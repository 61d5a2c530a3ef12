// Package models defines the core domain models for Settlewise.
//
// # Models
//
//   - Member: a person belonging to a group
//   - Group: a set of members who share expenses
//   - SpendEvent: one recorded expense (payer, total, participant shares)
//   - MemberBalance: a member's derived net position
//   - Transfer / SettlementPlan: derived payments that clear all balances
//
// # Design Principles
//
//  1. **Minor units everywhere**: all amounts are int64 minor units (cents).
//     Floating point never touches money.
//  2. **Append-only spends**: a SpendEvent is never edited in place; a
//     correction is a new compensating event. Balances are always a pure
//     fold over the event log, never a separately mutated running total.
//  3. **Avoid circular references**: relationships use ID strings, not
//     pointers.
//  4. **Derived data is not stored**: balances and settlement plans are
//     recomputed from the log on every read.
package models
