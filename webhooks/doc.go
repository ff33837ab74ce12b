// Package webhooks verifies inbound processor webhooks.
//
// Verification either signs the raw body (HeaderHMACVerifier) or signs a
// canonical rendering of the decoded payload with the signature value itself
// excluded (CanonicalPayloadVerifier). The canonical rendering walks the JSON
// tree depth-first and emits one string per primitive leaf.
package webhooks
