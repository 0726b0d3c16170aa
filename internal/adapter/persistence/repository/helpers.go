package repository

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strings"

	"machine_shop_suite/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// newQuoteID generates a "q_" + 24 hex char identifier from 12 bytes of
// crypto randomness. The id space makes a uniqueness check against storage
// unnecessary.
func newQuoteID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		panic("quote id entropy unavailable: " + err.Error())
	}
	return "q_" + hex.EncodeToString(buf)
}

// matchesSearch reports whether q matches the free-text filter: a
// case-insensitive substring check over the id and the normalized params.
func matchesSearch(q entities.Quote, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	haystack := strings.ToLower(strings.Join([]string{
		q.QuoteID,
		q.Params.Material,
		q.Params.Quality,
		q.Params.Printer,
		q.Currency,
	}, " "))
	return strings.Contains(haystack, needle)
}

func clampListLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 200 {
		return 200
	}
	return limit
}
