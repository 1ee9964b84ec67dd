package tidemerge

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/models"
)

// inputDomain separates merge-input hashes from any other use of the
// same digest. The null byte prevents boundary ambiguity between the
// domain tag and the fingerprinted content.
const inputDomain = "tidemerge/input/v1"

// Cache memoizes Merge results keyed on a content hash of both inputs.
// Merge itself is pure, so identical inputs always reproduce the same
// result; the cache just skips the recomputation. Only successful merges
// are cached. Cached result sets are shared: callers must treat them as
// read-only.
type Cache struct {
	opts Options
	r    Reporter

	mu      sync.Mutex
	results map[string]*models.ResultSet
}

// NewCache creates a memoizing wrapper around Merge with the given
// options and reporter.
func NewCache(opts Options, r Reporter) *Cache {
	return &Cache{
		opts:    opts,
		r:       r,
		results: make(map[string]*models.ResultSet),
	}
}

// Merge returns the cached result for these inputs, or runs the pipeline
// and caches the outcome.
func (c *Cache) Merge(events *models.Table, sheets []models.Sheet) (*models.ResultSet, error) {
	key := inputKey(events, sheets)

	c.mu.Lock()
	cached, ok := c.results[key]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	result, err := Merge(events, sheets, c.opts, c.r)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.results[key] = result
	c.mu.Unlock()
	return result, nil
}

// inputKey computes a sha256 content hash over the event table and every
// sensor sheet, in order.
func inputKey(events *models.Table, sheets []models.Sheet) string {
	h := sha256.New()
	h.Write([]byte(inputDomain))
	h.Write([]byte{0x00})
	hashTable(h, events)
	for _, sheet := range sheets {
		fmt.Fprintf(h, "sheet=%s\x00", sheet.Name)
		hashTable(h, sheet.Table)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func hashTable(w io.Writer, t *models.Table) {
	for _, col := range t.Columns {
		fmt.Fprintf(w, "c=%s\x00", col)
	}
	for _, row := range t.Rows {
		for _, cell := range row {
			fmt.Fprintf(w, "%T=%v\x00", cell, cell)
		}
		fmt.Fprintf(w, "\x01")
	}
}
