package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"machine_shop_suite/internal/domain/entities"
	"machine_shop_suite/internal/usecase/interfaces"
)

const (
	defaultQuotesDir = "data/quotes"
	quoteFileName    = "quote.json"
)

var ErrMalformedQuoteID = errors.New("malformed quote id")

// QuoteFileRepository persists quotes on the local filesystem.
//
// Layout:
//   - one directory per quote id under the base dir
//   - a single quote.json document per directory
//
// Save writes a temp file in the record's directory and renames it over the
// final path, so a crashed write never leaves a partial record visible. Load
// treats a corrupt or unreadable document as not found.
type QuoteFileRepository struct {
	baseDir string
	now     func() int64
}

var _ interfaces.IQuoteRepository = (*QuoteFileRepository)(nil)

func NewQuoteFileRepository(baseDir string) *QuoteFileRepository {
	if baseDir == "" {
		baseDir = getenvDefault("QUOTES_DIR", defaultQuotesDir)
	}
	return &QuoteFileRepository{
		baseDir: baseDir,
		now:     func() int64 { return time.Now().Unix() },
	}
}

// NewQuoteFileRepositoryWithClock injects the time source. Lifecycle logic
// only ever reads the clock through Now(), so tests drive expiry with this.
func NewQuoteFileRepositoryWithClock(baseDir string, now func() int64) *QuoteFileRepository {
	r := NewQuoteFileRepository(baseDir)
	r.now = now
	return r
}

func (r *QuoteFileRepository) NewID() string {
	return newQuoteID()
}

func (r *QuoteFileRepository) Now() int64 {
	return r.now()
}

func (r *QuoteFileRepository) quotePath(quoteID string) string {
	return filepath.Join(r.baseDir, quoteID, quoteFileName)
}

func (r *QuoteFileRepository) Save(_ context.Context, quoteID string, q entities.Quote) error {
	if !entities.IsValidQuoteID(quoteID) {
		return ErrMalformedQuoteID
	}

	payload, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal quote %s: %w", quoteID, err)
	}

	path := r.quotePath(quoteID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create quote dir %s: %w", quoteID, err)
	}

	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write quote %s: %w", quoteID, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace quote %s: %w", quoteID, err)
	}
	return nil
}

// Load returns a zero-value quote for malformed ids without touching the
// filesystem. Missing and corrupt records are indistinguishable to callers:
// both come back as not found.
func (r *QuoteFileRepository) Load(_ context.Context, quoteID string) (entities.Quote, error) {
	if !entities.IsValidQuoteID(quoteID) {
		return entities.Quote{}, nil
	}

	raw, err := os.ReadFile(r.quotePath(quoteID))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[quote][repo] unreadable record quote_id=%s err=%v", quoteID, err)
		}
		return entities.Quote{}, nil
	}

	var q entities.Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		log.Printf("[quote][repo] corrupt record quote_id=%s err=%v", quoteID, err)
		return entities.Quote{}, nil
	}
	return q, nil
}

// List scans the base directory. There is no secondary index; ids are visited
// in lexical order and the cursor is the last id of the previous page.
func (r *QuoteFileRepository) List(ctx context.Context, query interfaces.QuoteListQuery) ([]entities.Quote, string, error) {
	limit := clampListLimit(query.Limit)

	dirEntries, err := os.ReadDir(r.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []entities.Quote{}, "", nil
		}
		return nil, "", fmt.Errorf("scan quotes dir: %w", err)
	}

	ids := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() && entities.IsValidQuoteID(e.Name()) {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)

	items := make([]entities.Quote, 0, limit)
	nextCursor := ""
	for _, id := range ids {
		if query.Cursor != "" && id <= query.Cursor {
			continue
		}

		q, err := r.Load(ctx, id)
		if err != nil {
			return nil, "", err
		}
		if q.QuoteID == "" {
			continue
		}
		if query.Status != "" && q.Status != query.Status {
			continue
		}
		if !matchesSearch(q, query.Search) {
			continue
		}

		if len(items) == limit {
			nextCursor = items[len(items)-1].QuoteID
			break
		}
		items = append(items, q)
	}
	return items, nextCursor, nil
}
