// Package orderbook implements the matching core: per-symbol books of
// price-time ordered resting fragments, the matching algorithm that
// resolves an incoming order into execution legs, and the Engine
// façade that serializes all book mutation per symbol.
//
// The package performs no I/O. Persistence, idempotency and downstream
// delivery live in the service layer.
package orderbook
