package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"machine_shop_suite/internal/domain/entities"
	"machine_shop_suite/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrQuoteLocked            = errors.New("quote is locked")
	ErrQuoteExpired           = errors.New("quote is expired")
	ErrQuoteSignatureMismatch = errors.New("quote signature mismatch")
	ErrQuoteConfigChanged     = errors.New("configuration changed since quote was priced")
)

// ValidationError names the offending print parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IQuoteLifecycleUseCase drives the quote state machine.
//
// States: estimated -> {recalc_required, expired, locked};
// recalc_required -> estimated and expired -> estimated via Refresh;
// locked is terminal. Expiry is lazy: discovered on access.

type IQuoteLifecycleUseCase interface {
	Create(ctx context.Context, raw entities.PrintParams, computed map[string]any, currency string, ttlSeconds int64) (entities.Quote, error)
	Get(ctx context.Context, quoteID string) (entities.Quote, error)
	Refresh(ctx context.Context, quoteID string, extendTTL bool) (entities.Quote, error)
	Lock(ctx context.Context, quoteID string, providedSignature string) (entities.Quote, error)
	List(ctx context.Context, query interfaces.QuoteListQuery) ([]entities.Quote, string, error)
}

type QuoteLifecycleUseCase struct {
	repo   interfaces.IQuoteRepository
	config interfaces.IConfigSource
	signer interfaces.IQuoteSigner

	defaultTTL int64
	lockTTL    int64

	// Per-id mutexes serialize the load-decide-save sequence of concurrent
	// operations on the same quote so neither write is silently lost.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var _ IQuoteLifecycleUseCase = (*QuoteLifecycleUseCase)(nil)

func NewQuoteLifecycleUseCase(
	repo interfaces.IQuoteRepository,
	config interfaces.IConfigSource,
	signer interfaces.IQuoteSigner,
	defaultTTLSeconds int64,
	lockTTLSeconds int64,
) *QuoteLifecycleUseCase {
	if defaultTTLSeconds <= 0 {
		defaultTTLSeconds = 1800
	}
	if lockTTLSeconds <= 0 {
		lockTTLSeconds = 900
	}
	return &QuoteLifecycleUseCase{
		repo:       repo,
		config:     config,
		signer:     signer,
		defaultTTL: defaultTTLSeconds,
		lockTTL:    lockTTLSeconds,
		locks:      map[string]*sync.Mutex{},
	}
}

func (u *QuoteLifecycleUseCase) Create(ctx context.Context, raw entities.PrintParams, computed map[string]any, currency string, ttlSeconds int64) (entities.Quote, error) {
	params, verr := u.normalizeParams(raw)
	if verr != nil {
		return entities.Quote{}, verr
	}

	ttl := ttlSeconds
	if ttl <= 0 {
		ttl = u.defaultTTL
	}

	now := u.repo.Now()
	q := entities.Quote{
		QuoteID:       u.repo.NewID(),
		Status:        entities.QuoteStatusEstimated,
		CreatedAtTs:   now,
		ExpiresAtTs:   now + ttl,
		ConfigVersion: u.config.Version(),
		Params:        params,
		Computed:      computed,
		Price:         priceFromComputed(computed),
		Currency:      currency,
	}
	q.Signature = u.signer.Sign(q)

	if err := u.repo.Save(ctx, q.QuoteID, q); err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][lifecycle] created quote_id=%s config_version=%s expires_at=%d", q.QuoteID, q.ConfigVersion, q.ExpiresAtTs)
	return q, nil
}

// Get loads a quote and applies lazy expiry: a record past its expiresAtTs is
// flipped to expired, re-signed and persisted on the way out. Locked quotes
// are terminal and never demoted.
func (u *QuoteLifecycleUseCase) Get(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if !entities.IsValidQuoteID(quoteID) {
		return entities.Quote{}, ErrQuoteNotFound
	}

	unlock := u.lockQuote(quoteID)
	defer unlock()

	q, err := u.repo.Load(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.QuoteID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	now := u.repo.Now()
	if q.Status != entities.QuoteStatusLocked && q.Status != entities.QuoteStatusExpired && now > q.ExpiresAtTs {
		q.Status = entities.QuoteStatusExpired
		q.Signature = u.signer.Sign(q)
		if err := u.repo.Save(ctx, quoteID, q); err != nil {
			return entities.Quote{}, err
		}
		log.Printf("[quote][lifecycle] lazy-expired quote_id=%s", quoteID)
	}
	return q, nil
}

// Refresh revalidates a quote against the current configuration.
//
// A validation or configuration failure is a reported business outcome, not
// an operation error: the quote moves to recalc_required and the call
// succeeds. Only locked quotes refuse to refresh.
func (u *QuoteLifecycleUseCase) Refresh(ctx context.Context, quoteID string, extendTTL bool) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if !entities.IsValidQuoteID(quoteID) {
		return entities.Quote{}, ErrQuoteNotFound
	}

	unlock := u.lockQuote(quoteID)
	defer unlock()

	q, err := u.repo.Load(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.QuoteID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if q.Status == entities.QuoteStatusLocked {
		return entities.Quote{}, ErrQuoteLocked
	}

	now := u.repo.Now()

	if _, verr := u.normalizeParams(q.Params); verr != nil {
		msg := verr.Error()
		q.Status = entities.QuoteStatusRecalcRequired
		q.Computed = nil
		q.Price = nil
		q.Error = &msg
		q.RefreshedAtTs = &now
		q.Signature = u.signer.Sign(q)
		if err := u.repo.Save(ctx, quoteID, q); err != nil {
			return entities.Quote{}, err
		}
		log.Printf("[quote][lifecycle] refresh invalidated quote_id=%s reason=%q", quoteID, msg)
		return q, nil
	}

	live := u.config.Version()
	if q.ConfigVersion != live {
		q.Status = entities.QuoteStatusRecalcRequired
		q.Computed = nil
		q.Price = nil
		q.Error = nil
		q.RequiredConfigVersion = &live
		q.ExpiresAtTs = now + u.defaultTTL
		q.RefreshedAtTs = &now
		q.Signature = u.signer.Sign(q)
		if err := u.repo.Save(ctx, quoteID, q); err != nil {
			return entities.Quote{}, err
		}
		log.Printf("[quote][lifecycle] config drift quote_id=%s priced_under=%s live=%s", quoteID, q.ConfigVersion, live)
		return q, nil
	}

	wasExpired := q.Status == entities.QuoteStatusExpired || now > q.ExpiresAtTs
	q.Status = entities.QuoteStatusEstimated
	q.RequiredConfigVersion = nil
	q.Error = nil
	if wasExpired || extendTTL {
		q.ExpiresAtTs = now + u.defaultTTL
	}
	q.RefreshedAtTs = &now
	q.Signature = u.signer.Sign(q)
	if err := u.repo.Save(ctx, quoteID, q); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// Lock makes a quote's commercial terms immutable. The remaining validity
// window is replaced by the short lock TTL; this is the single allowed
// expiry adjustment after locking.
func (u *QuoteLifecycleUseCase) Lock(ctx context.Context, quoteID string, providedSignature string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if !entities.IsValidQuoteID(quoteID) {
		return entities.Quote{}, ErrQuoteNotFound
	}

	unlock := u.lockQuote(quoteID)
	defer unlock()

	q, err := u.repo.Load(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.QuoteID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if q.Status == entities.QuoteStatusLocked {
		return entities.Quote{}, ErrQuoteLocked
	}

	now := u.repo.Now()
	if q.Status == entities.QuoteStatusExpired || now > q.ExpiresAtTs {
		return entities.Quote{}, ErrQuoteExpired
	}

	// A caller-supplied signature proves the caller saw the record it is
	// committing to; mismatch is rejected before any state change.
	if providedSignature != "" && !u.signer.Verify(q, providedSignature) {
		return entities.Quote{}, ErrQuoteSignatureMismatch
	}

	// A quote awaiting re-pricing, or priced under a different configuration
	// than the live one, must not become a binding commitment.
	if q.Status == entities.QuoteStatusRecalcRequired || q.ConfigVersion != u.config.Version() {
		return entities.Quote{}, ErrQuoteConfigChanged
	}

	q.Status = entities.QuoteStatusLocked
	q.LockedAtTs = &now
	q.ExpiresAtTs = now + u.lockTTL
	q.Signature = u.signer.Sign(q)
	if err := u.repo.Save(ctx, quoteID, q); err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][lifecycle] locked quote_id=%s until=%d", quoteID, q.ExpiresAtTs)
	return q, nil
}

func (u *QuoteLifecycleUseCase) List(ctx context.Context, query interfaces.QuoteListQuery) ([]entities.Quote, string, error) {
	query.Search = strings.TrimSpace(query.Search)
	return u.repo.List(ctx, query)
}

func (u *QuoteLifecycleUseCase) lockQuote(quoteID string) func() {
	u.mu.Lock()
	m, ok := u.locks[quoteID]
	if !ok {
		m = &sync.Mutex{}
		u.locks[quoteID] = m
	}
	u.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// normalizeParams lower-cases the catalog keys and checks every field against
// the live configuration.
func (u *QuoteLifecycleUseCase) normalizeParams(raw entities.PrintParams) (entities.PrintParams, error) {
	p := entities.PrintParams{
		Material:      strings.ToLower(strings.TrimSpace(raw.Material)),
		Quality:       strings.ToLower(strings.TrimSpace(raw.Quality)),
		Printer:       strings.ToLower(strings.TrimSpace(raw.Printer)),
		Quantity:      raw.Quantity,
		InfillDensity: raw.InfillDensity,
	}

	if _, ok := u.config.Material(p.Material); !ok {
		return entities.PrintParams{}, &ValidationError{Field: "material", Reason: fmt.Sprintf("unknown material %q", p.Material)}
	}
	if _, ok := u.config.PrintQuality(p.Quality); !ok {
		return entities.PrintParams{}, &ValidationError{Field: "quality", Reason: fmt.Sprintf("unknown quality %q", p.Quality)}
	}
	printer, ok := u.config.Printer(p.Printer)
	if !ok {
		return entities.PrintParams{}, &ValidationError{Field: "printer", Reason: fmt.Sprintf("unknown printer %q", p.Printer)}
	}
	if !printer.Enabled {
		return entities.PrintParams{}, &ValidationError{Field: "printer", Reason: fmt.Sprintf("printer %q is disabled", p.Printer)}
	}
	if p.Quantity < 1 {
		return entities.PrintParams{}, &ValidationError{Field: "qty", Reason: "quantity must be at least 1"}
	}
	if p.InfillDensity < 5 || p.InfillDensity > 100 {
		return entities.PrintParams{}, &ValidationError{Field: "infillDensity", Reason: "infill density must be between 5 and 100"}
	}
	return p, nil
}

// priceFromComputed mirrors the headline total out of the pricing breakdown.
func priceFromComputed(computed map[string]any) *float64 {
	if computed == nil {
		return nil
	}
	switch v := computed["total_price"].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	default:
		return nil
	}
}
