package entities

import "regexp"

// QuoteStatus represents the lifecycle of a persisted quote.
//
// Domain notes:
//   - A quote starts as "estimated" and is the only state that can reach "locked".
//   - Expiry is lazy: it is discovered on access, never by a background sweep.
//   - "locked" is terminal; a locked quote is never demoted by expiry.

type QuoteStatus string

const (
	QuoteStatusEstimated      QuoteStatus = "estimated"
	QuoteStatusRecalcRequired QuoteStatus = "recalc_required"
	QuoteStatusExpired        QuoteStatus = "expired"
	QuoteStatusLocked         QuoteStatus = "locked"
)

// PrintParams is the normalized, validated print request a quote was priced for.
type PrintParams struct {
	Material      string `json:"material"`
	Quality       string `json:"quality"`
	Printer       string `json:"printer"`
	Quantity      int    `json:"qty"`
	InfillDensity int    `json:"infillDensity"`
}

// Quote is the signed quote record persisted by the quote store.
//
// Storage model (file backend):
//   - one directory per quote id under the quotes root
//   - a single quote.json document per directory, written atomically
//
// Integrity:
//   - Signature is an HMAC over the security-critical fields and must be
//     recomputed whenever any of them changes.
type Quote struct {
	QuoteID               string         `json:"quoteId"`
	Status                QuoteStatus    `json:"status"`
	CreatedAtTs           int64          `json:"createdAtTs"`
	ExpiresAtTs           int64          `json:"expiresAtTs"`
	RefreshedAtTs         *int64         `json:"refreshedAtTs,omitempty"`
	LockedAtTs            *int64         `json:"lockedAtTs,omitempty"`
	ConfigVersion         string         `json:"configVersion"`
	RequiredConfigVersion *string        `json:"requiredConfigVersion,omitempty"`
	Params                PrintParams    `json:"params"`
	Computed              map[string]any `json:"computed,omitempty"`
	Price                 *float64       `json:"price"`
	Currency              string         `json:"currency"`
	Error                 *string        `json:"error,omitempty"`
	Signature             string         `json:"signature"`
}

// quoteIDPattern matches ids produced by the repositories: a fixed "q_" prefix
// followed by 24 lowercase hex characters. Anything else is rejected before it
// can reach the backing store (path traversal guard for the file backend).
var quoteIDPattern = regexp.MustCompile(`^q_[0-9a-f]{24}$`)

func IsValidQuoteID(id string) bool {
	return quoteIDPattern.MatchString(id)
}
