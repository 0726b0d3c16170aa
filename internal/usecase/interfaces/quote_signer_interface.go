package interfaces

import "machine_shop_suite/internal/domain/entities"

// IQuoteSigner computes and verifies the keyed integrity tag stored on quotes.
//
// Sign is deterministic and covers the security-critical fields only; it must
// be re-run after every mutation of a signed field. Verify recomputes the tag
// and compares in constant time.
type IQuoteSigner interface {
	Sign(q entities.Quote) string
	Verify(q entities.Quote, signature string) bool
}
