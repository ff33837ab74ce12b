// Package cards classifies primary account numbers into card issuers using a
// BIN pattern table that is compiled once and shared read-only.
package cards
