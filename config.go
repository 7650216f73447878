package scorelib

import "context"

// ConfigVersion is the schema version written to new config files.
const ConfigVersion = "1.0"

// MaxRecentDocuments bounds the recent-documents list.
const MaxRecentDocuments = 5

// Config holds user preferences. It is a single record stored at a fixed
// path, independent of the catalog.
type Config struct {
	Version       string        `json:"version"`
	SortBy        SortField     `json:"sortBy"`
	SortDirection SortDirection `json:"sortDirection"`

	// LastOpenedDocumentID references an existing document or is empty.
	LastOpenedDocumentID string `json:"lastOpenedDocumentId"`

	// RecentDocuments lists document IDs, most recent first, capped at
	// MaxRecentDocuments.
	RecentDocuments []string `json:"recentDocuments"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		Version:         ConfigVersion,
		SortBy:          SortByLastAccessed,
		SortDirection:   SortDesc,
		RecentDocuments: []string{},
	}
}

// AddRecent moves id to the front of the recent-documents list, collapsing
// any existing occurrence and evicting the oldest entry beyond the cap.
func (c *Config) AddRecent(id string) {
	recents := make([]string, 0, len(c.RecentDocuments)+1)
	recents = append(recents, id)
	for _, existing := range c.RecentDocuments {
		if existing != id {
			recents = append(recents, existing)
		}
	}
	if len(recents) > MaxRecentDocuments {
		recents = recents[:MaxRecentDocuments]
	}
	c.RecentDocuments = recents
}

// ConfigStore manages the single user-preferences record. Save is a full
// overwrite; partial semantics are implemented by callers who load, mutate
// in memory, and save.
type ConfigStore interface {
	// Load returns the stored config, persisting and returning defaults if
	// no config exists yet. Returns ECORRUPT if the stored bytes do not
	// parse.
	Load(ctx context.Context) (*Config, error)

	// Save overwrites the stored config.
	Save(ctx context.Context, config *Config) error
}
