package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"machine_shop_suite/internal/domain/entities"
	"machine_shop_suite/internal/usecase/interfaces"
)

// devSecret is the development fallback. Deployments must set
// QUOTE_HMAC_SECRET (or SECRET_KEY); a guessable key makes forged signatures
// possible.
const devSecret = "dev-secret"

// HMACQuoteSigner tags quotes with an HMAC-SHA256 over the security-critical
// fields: quoteId, status, price, currency, configVersion, expiresAtTs, plus
// canonical digests of params and computed. JSON key reordering never changes
// the signature because both digests canonicalize key order first.
type HMACQuoteSigner struct {
	secret []byte
}

var _ interfaces.IQuoteSigner = (*HMACQuoteSigner)(nil)

func NewHMACQuoteSigner(secret string) *HMACQuoteSigner {
	return &HMACQuoteSigner{secret: []byte(secret)}
}

// NewHMACQuoteSignerFromEnv resolves the secret from QUOTE_HMAC_SECRET, then
// SECRET_KEY, then the development fallback.
func NewHMACQuoteSignerFromEnv() *HMACQuoteSigner {
	secret := os.Getenv("QUOTE_HMAC_SECRET")
	if secret == "" {
		secret = os.Getenv("SECRET_KEY")
	}
	if secret == "" {
		secret = devSecret
		log.Printf("[quote][signer] QUOTE_HMAC_SECRET not set, using development secret")
	}
	return NewHMACQuoteSigner(secret)
}

func (s *HMACQuoteSigner) Sign(q entities.Quote) string {
	msg := strings.Join([]string{
		q.QuoteID,
		string(q.Status),
		priceString(q.Price),
		q.Currency,
		q.ConfigVersion,
		strconv.FormatInt(q.ExpiresAtTs, 10),
		canonicalDigest(q.Params),
		canonicalDigest(q.Computed),
	}, "|")

	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(msg))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *HMACQuoteSigner) Verify(q entities.Quote, signature string) bool {
	expected := s.Sign(q)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func priceString(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// canonicalDigest hashes the canonical JSON form of v. Round-tripping through
// an untyped value turns structs into maps, and encoding/json emits map keys
// in sorted order, so field order in the input never affects the digest.
func canonicalDigest(v any) string {
	sum := sha256.Sum256(canonicalJSON(v))
	return hex.EncodeToString(sum[:])
}

func canonicalJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}
	var untyped any
	if err := json.Unmarshal(b, &untyped); err != nil {
		return b
	}
	out, err := json.Marshal(untyped)
	if err != nil {
		return b
	}
	return out
}
