package catalog

import (
	"sort"
	"strings"
)

// The functions below are the pure data transformations behind the catalog
// browsing views (search box and sidebar sections). They never mutate their
// input; each returns a fresh slice over the same immutable records.

// Search returns the records whose title or channel contains query,
// case-insensitively. An empty query matches everything.
func Search(records []VideoRecord, query string) []VideoRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]VideoRecord(nil), records...)
	}
	var out []VideoRecord
	for _, v := range records {
		if strings.Contains(strings.ToLower(v.Title), q) || strings.Contains(strings.ToLower(v.Channel), q) {
			out = append(out, v)
		}
	}
	return out
}

// Recent returns the first n records, or all of them if n exceeds the list.
func Recent(records []VideoRecord, n int) []VideoRecord {
	if n > len(records) {
		n = len(records)
	}
	if n < 0 {
		n = 0
	}
	return append([]VideoRecord(nil), records[:n]...)
}

// Reversed returns the records in reverse order.
func Reversed(records []VideoRecord) []VideoRecord {
	out := make([]VideoRecord, len(records))
	for i, v := range records {
		out[len(records)-1-i] = v
	}
	return out
}

// Slice returns records[lo:hi], clamped to valid bounds.
func Slice(records []VideoRecord, lo, hi int) []VideoRecord {
	if lo < 0 {
		lo = 0
	}
	if hi > len(records) {
		hi = len(records)
	}
	if lo >= hi {
		return nil
	}
	return append([]VideoRecord(nil), records[lo:hi]...)
}

// MostViewed returns the n records with the highest view counts, in
// descending order. The sort is stable so equal counts keep catalog order.
func MostViewed(records []VideoRecord, n int) []VideoRecord {
	out := append([]VideoRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// ByID returns the record with the given ID, or false if absent.
func ByID(records []VideoRecord, id string) (VideoRecord, bool) {
	for _, v := range records {
		if v.ID == id {
			return v, true
		}
	}
	return VideoRecord{}, false
}
