// Package article holds the collected article fields and the pure functions
// that derive slugs, tags, dates, the rendered document and its location.
package article

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultLayout = "post"

	dateLayout     = "2006-01-02 15:04:05"
	categoryLayout = "January2006"
)

type Author struct {
	Name    string
	Twitter string
	GitHub  string
	URL     string
}

// Input is everything one session collects. It is filled in prompt order
// and handed to Render once complete.
type Input struct {
	Published   time.Time
	Title       string
	Slug        string
	Tags        []string
	Author      Author
	Layout      string
	Delimiter   string
	Description string
}

// PublishDate builds midnight of the given day in loc. Parts are parsed as
// integers and out-of-range values normalize (month 13 is January of the
// following year).
func PublishDate(year, month, day string, loc *time.Location) (time.Time, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid publish year %q: %w", year, err)
	}
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid publish month %q: %w", month, err)
	}
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid publish date %q: %w", day, err)
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc), nil
}

func DateString(t time.Time) string {
	return t.Format(dateLayout)
}

// Category is the full month name followed by the year, e.g. "March2024".
func Category(t time.Time) string {
	return t.Format(categoryLayout)
}

// SuggestSlug lowercases the title and turns each space into a hyphen.
// Nothing else is stripped.
func SuggestSlug(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}

// SplitTags splits on every comma and keeps each piece as typed, empty
// pieces included.
func SplitTags(raw string) []string {
	return strings.Split(raw, ",")
}
