package scorelib_test

import (
	"testing"
	"time"

	"github.com/fwojciec/scorelib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	doc := scorelib.NewDocument("doc-1", "Moonlight Sonata.pdf", 2048, now)

	assert.Equal(t, "doc-1", doc.ID)
	assert.Equal(t, "Moonlight Sonata", doc.Title)
	assert.Empty(t, doc.Composer)
	assert.Empty(t, doc.Instrument)
	assert.Equal(t, now, doc.DateAdded)
	assert.Equal(t, now, doc.LastAccessed)
	assert.Equal(t, "Moonlight Sonata.pdf", doc.FileName)
	assert.Equal(t, int64(2048), doc.FileSize)
	assert.Equal(t, 0, doc.SortOrder)
	assert.True(t, doc.SideBySide)
	assert.False(t, doc.PageOffset)
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires an ID", func(t *testing.T) {
		t.Parallel()

		doc := &scorelib.Document{FileName: "score.pdf"}

		err := doc.Validate()

		require.Error(t, err)
		assert.Equal(t, scorelib.EINVALID, scorelib.ErrorCode(err))
	})

	t.Run("requires a file name", func(t *testing.T) {
		t.Parallel()

		doc := &scorelib.Document{ID: "doc-1"}

		err := doc.Validate()

		require.Error(t, err)
		assert.Equal(t, scorelib.EINVALID, scorelib.ErrorCode(err))
	})

	t.Run("accepts a populated record", func(t *testing.T) {
		t.Parallel()

		doc := scorelib.NewDocument("doc-1", "score.pdf", 10, time.Now())

		require.NoError(t, doc.Validate())
	})
}

func TestDocumentUpdate_Apply(t *testing.T) {
	t.Parallel()

	t.Run("merges only supplied fields", func(t *testing.T) {
		t.Parallel()

		doc := scorelib.NewDocument("doc-1", "score.pdf", 10, time.Now())
		title := "Prelude in C"
		order := 3

		scorelib.DocumentUpdate{Title: &title, SortOrder: &order}.Apply(doc)

		assert.Equal(t, "Prelude in C", doc.Title)
		assert.Equal(t, 3, doc.SortOrder)
		assert.Empty(t, doc.Composer)
		assert.True(t, doc.SideBySide)
	})

	t.Run("empty update changes nothing", func(t *testing.T) {
		t.Parallel()

		doc := scorelib.NewDocument("doc-1", "score.pdf", 10, time.Now())
		before := *doc

		scorelib.DocumentUpdate{}.Apply(doc)

		assert.Equal(t, before, *doc)
	})
}

func TestDocument_Entry(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	doc := &scorelib.Document{
		ID:           "doc-1",
		Title:        "Moonlight Sonata",
		Composer:     "Beethoven",
		Instrument:   "Piano",
		DateAdded:    now,
		LastAccessed: now.Add(time.Hour),
		FileName:     "moonlight.pdf",
		FileSize:     2048,
	}

	entry := doc.Entry()

	assert.Equal(t, scorelib.CatalogEntry{
		ID:           "doc-1",
		Title:        "Moonlight Sonata",
		Composer:     "Beethoven",
		Instrument:   "Piano",
		DateAdded:    now,
		LastAccessed: now.Add(time.Hour),
	}, entry)
}
