package scorelib_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/scorelib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("queries shorter than two characters return nothing", func(t *testing.T) {
		t.Parallel()

		entries := []scorelib.CatalogEntry{{Title: "Moonlight Sonata"}}

		assert.Nil(t, scorelib.Search("", entries, 10))
		assert.Nil(t, scorelib.Search("m", entries, 10))
		assert.Nil(t, scorelib.Search("  m  ", entries, 10))
	})

	t.Run("every term must match for an entry to be a candidate", func(t *testing.T) {
		t.Parallel()

		entries := []scorelib.CatalogEntry{
			{ID: "1", Title: "Moonlight Sonata", Instrument: "Piano"},
			{ID: "2", Title: "Sonata No.2", Instrument: "Violin"},
		}

		results := scorelib.Search("sonata piano", entries, 10)

		require.Len(t, results, 1)
		assert.Equal(t, "1", results[0].Entry.ID)
	})

	t.Run("no matches returns empty", func(t *testing.T) {
		t.Parallel()

		entries := []scorelib.CatalogEntry{
			{Title: "Moonlight Sonata", Instrument: "Piano"},
			{Title: "Sonata No.2", Instrument: "Violin"},
		}

		assert.Empty(t, scorelib.Search("xyz", entries, 10))
	})

	t.Run("terms match across fields", func(t *testing.T) {
		t.Parallel()

		entries := []scorelib.CatalogEntry{
			{ID: "1", Title: "Nocturne Op.9", Composer: "Chopin", Instrument: "Piano"},
		}

		results := scorelib.Search("chopin nocturne piano", entries, 10)

		require.Len(t, results, 1)
	})

	t.Run("title matches outrank composer and instrument matches", func(t *testing.T) {
		t.Parallel()

		entries := []scorelib.CatalogEntry{
			{ID: "composer", Title: "Etude", Composer: "Sonata Arctica"},
			{ID: "title", Title: "Sonata", Composer: "Beethoven"},
		}

		results := scorelib.Search("sonata", entries, 10)

		require.Len(t, results, 2)
		assert.Equal(t, "title", results[0].Entry.ID)
		assert.Equal(t, "composer", results[1].Entry.ID)
	})

	t.Run("scores are additive over fields", func(t *testing.T) {
		t.Parallel()

		entries := []scorelib.CatalogEntry{
			// Whole-word title match with prefix (10+5+3) plus whole-word
			// composer match with prefix (7+3+2).
			{ID: "1", Title: "Bach Partita", Composer: "Bach"},
		}

		results := scorelib.Search("bach", entries, 10)

		require.Len(t, results, 1)
		assert.Equal(t, 30, results[0].Score)
	})

	t.Run("prefix bonus ranks exact-start titles first", func(t *testing.T) {
		t.Parallel()

		entries := []scorelib.CatalogEntry{
			{ID: "mid", Title: "Piano Sonata"},
			{ID: "start", Title: "Sonata"},
		}

		results := scorelib.Search("sonata", entries, 10)

		require.Len(t, results, 2)
		// "Sonata" starts with the term (10+5+3); "Piano Sonata" matches
		// the word but not the prefix (10+5).
		assert.Equal(t, "start", results[0].Entry.ID)
		assert.Equal(t, 18, results[0].Score)
		assert.Equal(t, 15, results[1].Score)
	})

	t.Run("ties preserve input order", func(t *testing.T) {
		t.Parallel()

		entries := []scorelib.CatalogEntry{
			{ID: "first", Title: "Sonata"},
			{ID: "second", Title: "Sonata"},
		}

		results := scorelib.Search("sonata", entries, 10)

		require.Len(t, results, 2)
		assert.Equal(t, "first", results[0].Entry.ID)
		assert.Equal(t, "second", results[1].Entry.ID)
		assert.Equal(t, results[0].Score, results[1].Score)
	})

	t.Run("results are truncated to the limit", func(t *testing.T) {
		t.Parallel()

		var entries []scorelib.CatalogEntry
		for i := 0; i < 20; i++ {
			entries = append(entries, scorelib.CatalogEntry{
				ID:    fmt.Sprintf("doc-%d", i),
				Title: "Sonata",
			})
		}

		assert.Len(t, scorelib.Search("sonata", entries, 3), 3)
	})

	t.Run("non-positive limit defaults to ten", func(t *testing.T) {
		t.Parallel()

		var entries []scorelib.CatalogEntry
		for i := 0; i < 20; i++ {
			entries = append(entries, scorelib.CatalogEntry{
				ID:    fmt.Sprintf("doc-%d", i),
				Title: "Sonata",
			})
		}

		assert.Len(t, scorelib.Search("sonata", entries, 0), scorelib.DefaultSearchLimit)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		entries := []scorelib.CatalogEntry{
			{ID: "1", Title: "MOONLIGHT SONATA"},
		}

		results := scorelib.Search("Sonata", entries, 10)

		require.Len(t, results, 1)
	})
}

func TestFilterEntries(t *testing.T) {
	t.Parallel()

	entries := []scorelib.CatalogEntry{
		{ID: "1", Composer: "Frédéric Chopin", Instrument: "Piano"},
		{ID: "2", Composer: "Chopin", Instrument: "piano"},
		{ID: "3", Composer: "Bach", Instrument: "Violin"},
	}

	t.Run("instrument matches the whole field case-insensitively", func(t *testing.T) {
		t.Parallel()

		filtered := scorelib.FilterEntries(entries, scorelib.EntryFilter{Instrument: "PIANO"})

		require.Len(t, filtered, 2)
		assert.Equal(t, "1", filtered[0].ID)
		assert.Equal(t, "2", filtered[1].ID)
	})

	t.Run("composer matches as a substring", func(t *testing.T) {
		t.Parallel()

		filtered := scorelib.FilterEntries(entries, scorelib.EntryFilter{Composer: "chopin"})

		require.Len(t, filtered, 2)
	})

	t.Run("filters combine", func(t *testing.T) {
		t.Parallel()

		filtered := scorelib.FilterEntries(entries, scorelib.EntryFilter{
			Composer:   "chopin",
			Instrument: "violin",
		})

		assert.Empty(t, filtered)
	})
}

func TestUniqueValues(t *testing.T) {
	t.Parallel()

	entries := []scorelib.CatalogEntry{
		{Composer: "Chopin", Instrument: "Piano"},
		{Composer: "Bach", Instrument: "Piano"},
		{Composer: "Chopin", Instrument: ""},
	}

	assert.Equal(t, []string{"Bach", "Chopin"}, scorelib.UniqueComposers(entries))
	assert.Equal(t, []string{"Piano"}, scorelib.UniqueInstruments(entries))
}
