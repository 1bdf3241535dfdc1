// Package util provides small shared helpers for the contract agent:
// secret masking for safe display, and the date parsing and arithmetic
// the alert policy is built on.
package util
