package blacklist

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
)

// DefaultLocalPath is the curated filters file shipped alongside the
// service, relative to the working directory.
const DefaultLocalPath = "filters/caught.json"

// localDocument mirrors the on-disk shape of the curated list.
type localDocument struct {
	FlaggedSites []string `json:"flagged_sites"`
}

// LocalSource flags URLs that appear verbatim in a curated JSON file. The
// file is re-read on every lookup so on-disk edits take effect without a
// restart.
type LocalSource struct {
	logger *slog.Logger
	path   string
}

// NewLocal creates a local source backed by the file at path.
func NewLocal(path string, logger *slog.Logger) *LocalSource {
	if path == "" {
		path = DefaultLocalPath
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &LocalSource{path: path, logger: logger}
}

// Name identifies this source in analysis output.
func (s *LocalSource) Name() string { return "local" }

// Contains reports whether the URL exactly equals one of the flagged sites.
// A missing or corrupt file logs a warning and degrades to "no match".
func (s *LocalSource) Contains(_ context.Context, url string) bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Warn("local blacklist unreadable", "path", s.path, "error", err)
		return false
	}

	var doc localDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("local blacklist malformed", "path", s.path, "error", err)
		return false
	}

	for _, site := range doc.FlaggedSites {
		if site == url {
			return true
		}
	}

	return false
}
