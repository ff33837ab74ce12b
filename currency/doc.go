// Package currency converts integer minor-unit amounts into the major-unit
// representations processors expect, e.g. 10050 USD into "100.50".
//
// The number of minor-unit digits per currency comes from an ExponentSource.
// TableExponents is the default source; CLDRExponents reads the rounding
// data bundled with golang.org/x/text.
package currency
