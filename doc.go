// Package findash implements the data core of a personal-finance dashboard:
// accounts, transactions and category budgets held in a single mutable store.
//
// The [Store] is the single source of truth. Mutations never fail: unknown
// ids degrade to silent no-ops, missing account references are tolerated, and
// every change is written through to a durable [Storage] slot as one JSON
// snapshot. Queries (totals, per-account balances, category spending over a
// lookback window) are recomputed from the live state on each call.
//
// Views live outside this package: the renderer package turns derived
// reports into markdown and the cmd package exposes every operation on the
// command line.
package findash
