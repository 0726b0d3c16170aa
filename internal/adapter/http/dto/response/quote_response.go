package response

import "machine_shop_suite/internal/domain/entities"

// QuoteResponse is the full quote document returned by the single-record
// endpoints.
type QuoteResponse struct {
	QuoteID               string         `json:"quoteId"`
	Status                string         `json:"status"`
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

// QuoteLiteResponse omits the pricing breakdown; used by the admin listing.
type QuoteLiteResponse struct {
	QuoteID       string      `json:"quoteId"`
	Status        string      `json:"status"`
	CreatedAtTs   int64       `json:"createdAtTs"`
	ExpiresAtTs   int64       `json:"expiresAtTs"`
	ConfigVersion string      `json:"configVersion"`
	Params        PrintParams `json:"params"`
	Price         *float64    `json:"price"`
	Currency      string      `json:"currency"`
}

type PrintParams struct {
	Material      string `json:"material"`
	Quality       string `json:"quality"`
	Printer       string `json:"printer"`
	Quantity      int    `json:"qty"`
	InfillDensity int    `json:"infillDensity"`
}

type QuoteListResponse struct {
	Items      []QuoteLiteResponse `json:"items"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:               q.QuoteID,
		Status:                string(q.Status),
		CreatedAtTs:           q.CreatedAtTs,
		ExpiresAtTs:           q.ExpiresAtTs,
		RefreshedAtTs:         q.RefreshedAtTs,
		LockedAtTs:            q.LockedAtTs,
		ConfigVersion:         q.ConfigVersion,
		RequiredConfigVersion: q.RequiredConfigVersion,
		Params:                fromPrintParams(q.Params),
		Computed:              q.Computed,
		Price:                 q.Price,
		Currency:              q.Currency,
		Error:                 q.Error,
		Signature:             q.Signature,
	}
}

func FromQuoteLite(q entities.Quote) QuoteLiteResponse {
	return QuoteLiteResponse{
		QuoteID:       q.QuoteID,
		Status:        string(q.Status),
		CreatedAtTs:   q.CreatedAtTs,
		ExpiresAtTs:   q.ExpiresAtTs,
		ConfigVersion: q.ConfigVersion,
		Params:        fromPrintParams(q.Params),
		Price:         q.Price,
		Currency:      q.Currency,
	}
}

func FromQuoteList(items []entities.Quote, nextCursor string) QuoteListResponse {
	out := QuoteListResponse{Items: make([]QuoteLiteResponse, 0, len(items)), NextCursor: nextCursor}
	for _, q := range items {
		out.Items = append(out.Items, FromQuoteLite(q))
	}
	return out
}

func fromPrintParams(p entities.PrintParams) PrintParams {
	return PrintParams{
		Material:      p.Material,
		Quality:       p.Quality,
		Printer:       p.Printer,
		Quantity:      p.Quantity,
		InfillDensity: p.InfillDensity,
	}
}
