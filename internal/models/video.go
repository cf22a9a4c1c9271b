package models

import (
	"time"

	"github.com/google/uuid"
)

// Video is a catalog entry pointing at externally hosted media.
// MediaID is the external file reference; the playable URL is derived
// from it at read time and never stored.
type Video struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MediaID     string    `json:"media_id"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// Playable is the public projection of a Video: the media reference is
// replaced by a resolved URL. CreatedAt is omitted from anonymous
// responses when zero.
type Playable struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	URL         string     `json:"url"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
