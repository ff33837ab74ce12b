// Package connector holds the request envelope handed to payment processor
// integrations and the accessors that pull required fields out of it.
//
// Optional fields are pointers, nil slices, or nil json.RawMessage values.
// Every accessor either returns the field or fails with a connector error
// naming the dotted path of the missing field, e.g. "billing.address.country".
// Accessors never log, retry, or default silently.
package connector
