package webhooks

var (
	_ Verifier = HeaderHMACVerifier{}
	_ Verifier = CanonicalPayloadVerifier{}
	_ Verifier = (*Registry)(nil)
)
