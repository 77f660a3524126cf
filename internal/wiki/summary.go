package wiki

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Thumbnail describes the optional preview image of an article.
type Thumbnail struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Summary is one random article as returned by the REST summary endpoint,
// tagged with the edition it was fetched from. It is never mutated after decoding.
type Summary struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Extract     string     `json:"extract"`
	Thumbnail   *Thumbnail `json:"thumbnail,omitempty"`
	DesktopURL  string     `json:"desktop_url"`
	MobileURL   string     `json:"mobile_url"`
	Lang        Language   `json:"lang"`
}

// LinkVariant selects which canonical page URL to use.
type LinkVariant string

const (
	LinkMobile  LinkVariant = "mobile"
	LinkDesktop LinkVariant = "desktop"
)

// Link returns the canonical page for the variant, falling back to the other
// variant when the preferred one is missing.
func (s Summary) Link(v LinkVariant) string {
	if v == LinkDesktop {
		if s.DesktopURL != "" {
			return s.DesktopURL
		}
		return s.MobileURL
	}
	if s.MobileURL != "" {
		return s.MobileURL
	}
	return s.DesktopURL
}

func (s Summary) HasThumbnail() bool {
	return s.Thumbnail != nil && s.Thumbnail.Source != ""
}

var errMissingID = errors.New("summary has no page id")

type apiPage struct {
	Page string `json:"page"`
}

type apiSummary struct {
	PageID      int64      `json:"pageid"`
	ID          *int64     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Extract     string     `json:"extract"`
	Thumbnail   *Thumbnail `json:"thumbnail"`
	ContentURLs struct {
		Desktop apiPage `json:"desktop"`
		Mobile  apiPage `json:"mobile"`
	} `json:"content_urls"`
}

// decodeSummary parses a REST summary body. The edition in the body is
// ignored; the caller's language is what the feed tracks.
func decodeSummary(data []byte, lang Language) (Summary, error) {
	var raw apiSummary
	if err := json.Unmarshal(data, &raw); err != nil {
		return Summary{}, fmt.Errorf("decoding summary: %w", err)
	}

	id := raw.PageID
	if id == 0 && raw.ID != nil {
		id = *raw.ID
	}
	if id == 0 {
		return Summary{}, fmt.Errorf("decoding summary %q: %w", raw.Title, errMissingID)
	}

	thumb := raw.Thumbnail
	if thumb != nil && thumb.Source == "" {
		thumb = nil
	}

	return Summary{
		ID:          id,
		Title:       raw.Title,
		Description: raw.Description,
		Extract:     raw.Extract,
		Thumbnail:   thumb,
		DesktopURL:  raw.ContentURLs.Desktop.Page,
		MobileURL:   raw.ContentURLs.Mobile.Page,
		Lang:        lang,
	}, nil
}
