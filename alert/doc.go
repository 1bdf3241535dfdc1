// Package alert implements the contract agent's alert policy: which
// expiration window a contract falls into, what priority the resulting
// alert carries, and how alert records are persisted.
//
// It deliberately contains no scheduling and no ERPNext delivery; the Sink
// interface is the seam where delivery plugs in.
package alert
