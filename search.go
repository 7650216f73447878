package scorelib

import (
	"slices"
	"sort"
	"strings"
)

// DefaultSearchLimit is used when Search is called with a non-positive limit.
const DefaultSearchLimit = 10

// Relevance weights per term. A substring match in a field awards the base
// weight; matching one of the field's whitespace-split tokens exactly adds
// the word bonus; a field starting with the term adds the prefix bonus.
// Instrument has no prefix bonus.
const (
	titleMatchWeight      = 10
	titleWordBonus        = 5
	titlePrefixBonus      = 3
	composerMatchWeight   = 7
	composerWordBonus     = 3
	composerPrefixBonus   = 2
	instrumentMatchWeight = 3
	instrumentWordBonus   = 2
)

// SearchResult pairs a catalog entry with its relevance score.
type SearchResult struct {
	Entry CatalogEntry `json:"entry"`
	Score int          `json:"score"`
}

// Search ranks catalog entries against a multi-term query. Every
// whitespace-separated term must appear as a substring of the entry's
// combined title, composer, and instrument for the entry to be a candidate
// at all. Candidates are ordered by descending score; ties preserve the
// input order. Queries shorter than two non-whitespace characters return
// no results. A non-positive limit means DefaultSearchLimit.
func Search(query string, entries []CatalogEntry, limit int) []SearchResult {
	if len(strings.TrimSpace(query)) < 2 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var results []SearchResult
	for _, entry := range entries {
		title := strings.ToLower(entry.Title)
		composer := strings.ToLower(entry.Composer)
		instrument := strings.ToLower(entry.Instrument)
		combined := title + " " + composer + " " + instrument

		if !allTermsMatch(terms, combined) {
			continue
		}

		score := 0
		for _, term := range terms {
			if strings.Contains(title, term) {
				score += titleMatchWeight
				if slices.Contains(strings.Fields(title), term) {
					score += titleWordBonus
				}
				if strings.HasPrefix(title, term) {
					score += titlePrefixBonus
				}
			}

			if strings.Contains(composer, term) {
				score += composerMatchWeight
				if slices.Contains(strings.Fields(composer), term) {
					score += composerWordBonus
				}
				if strings.HasPrefix(composer, term) {
					score += composerPrefixBonus
				}
			}

			if strings.Contains(instrument, term) {
				score += instrumentMatchWeight
				if slices.Contains(strings.Fields(instrument), term) {
					score += instrumentWordBonus
				}
			}
		}

		results = append(results, SearchResult{Entry: entry, Score: score})
	}

	// Stable sort so equal scores keep the input order. This is an
	// observable contract relied on by consumers for deterministic display.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func allTermsMatch(terms []string, combined string) bool {
	for _, term := range terms {
		if !strings.Contains(combined, term) {
			return false
		}
	}
	return true
}

// EntryFilter narrows catalog entries by metadata fields.
type EntryFilter struct {
	// Instrument matches the whole field, case-insensitively.
	Instrument string

	// Composer matches as a case-insensitive substring.
	Composer string
}

// FilterEntries returns the entries matching every set filter field.
func FilterEntries(entries []CatalogEntry, filter EntryFilter) []CatalogEntry {
	var filtered []CatalogEntry
	for _, entry := range entries {
		if filter.Instrument != "" &&
			!strings.EqualFold(entry.Instrument, filter.Instrument) {
			continue
		}
		if filter.Composer != "" &&
			!strings.Contains(strings.ToLower(entry.Composer), strings.ToLower(filter.Composer)) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

// UniqueComposers returns the sorted set of non-empty composer values.
// Useful for populating filter pickers.
func UniqueComposers(entries []CatalogEntry) []string {
	return uniqueValues(entries, func(e CatalogEntry) string { return e.Composer })
}

// UniqueInstruments returns the sorted set of non-empty instrument values.
func UniqueInstruments(entries []CatalogEntry) []string {
	return uniqueValues(entries, func(e CatalogEntry) string { return e.Instrument })
}

func uniqueValues(entries []CatalogEntry, field func(CatalogEntry) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, entry := range entries {
		v := field(entry)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
