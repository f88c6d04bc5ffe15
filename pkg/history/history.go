// Package history persists the photos a user has viewed so the recommendation scorer can
// derive a preference profile across CLI invocations.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/nino-chavez/gallery-query/pkg/gallery"
	"github.com/sirupsen/logrus"
)

/**************************************************************************************************
** TViewEntry is one recorded view. The full photo record is stored, not just the ID,
** because preference building needs the enrichment metadata as it was at view time.
**************************************************************************************************/
type TViewEntry struct {
	SessionID string         `json:"sessionId"`
	Photo     gallery.TPhoto `json:"photo"`
	ViewedAt  time.Time      `json:"viewedAt"`
}

/**************************************************************************************************
** Store is an append-only JSON file of view entries, oldest to newest. Each Store instance
** tags the entries it writes with a fresh session ID so a history file can be split back
** into browsing sessions later.
**************************************************************************************************/
type Store struct {
	path      string
	sessionID string
	logger    *logrus.Logger
}

/**************************************************************************************************
** NewStore creates a view-history store backed by the given file. The file does not need
** to exist yet; a missing file reads as an empty history.
**
** @param path - Path to the history JSON file
** @param logger - Logger instance for output
** @return *Store - Configured store, or nil when path or logger is missing
**************************************************************************************************/
func NewStore(path string, logger *logrus.Logger) *Store {
	if path == "" || logger == nil {
		return nil
	}
	return &Store{
		path:      path,
		sessionID: uuid.NewString(),
		logger:    logger,
	}
}

// SessionID returns the session tag applied to entries recorded by this store instance
func (s *Store) SessionID() string {
	return s.sessionID
}

/**************************************************************************************************
** Entries reads the full history, oldest to newest. A missing file is an empty history,
** not an error.
**
** @return []TViewEntry - Recorded views
** @return error - Any error that occurred while reading or decoding
**************************************************************************************************/
func (s *Store) Entries() ([]TViewEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading history file: %w", err)
	}

	var entries []TViewEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error decoding history file %s: %w", s.path, err)
	}
	return entries, nil
}

/**************************************************************************************************
** Photos returns the viewed photos oldest to newest, the shape GetRecommendations expects
** as its view history.
**
** @return []gallery.TPhoto - Viewed photos
** @return error - Any error that occurred while reading the history
**************************************************************************************************/
func (s *Store) Photos() ([]gallery.TPhoto, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}

	photos := make([]gallery.TPhoto, len(entries))
	for i, entry := range entries {
		photos[i] = entry.Photo
	}
	return photos, nil
}

/**************************************************************************************************
** Record appends a view to the history file.
**
** @param photo - Photo that was viewed
** @return error - Any error that occurred while persisting
**************************************************************************************************/
func (s *Store) Record(photo gallery.TPhoto) error {
	entries, err := s.Entries()
	if err != nil {
		return err
	}

	entries = append(entries, TViewEntry{
		SessionID: s.sessionID,
		Photo:     photo,
		ViewedAt:  time.Now().UTC(),
	})

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("error writing history file: %w", err)
	}

	s.logger.Debugf("Recorded view of %s (%d entries total)", photo.ID, len(entries))
	return nil
}

/**************************************************************************************************
** Clear removes the history file. A missing file is already clear.
**
** @return error - Any error other than the file not existing
**************************************************************************************************/
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error clearing history file: %w", err)
	}
	return nil
}
