// internal/daily/daily.go
//
// Deterministic daily word selection.
//
// Every player who asks on the same calendar day gets the same word, with no
// server round trip: the word is a pure function of the date, a fixed epoch
// and the ordered word list.
//
//   dayIndex = whole calendar days from epoch to date
//   word     = words[dayIndex % len(words)]
//
// The list wraps around once it is exhausted, so the puzzle repeats.
package daily

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrDateBeforeStart = errors.New("date is before game start")
	ErrNoWords         = errors.New("daily: word list is empty")
)

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// Record is the word for one day and that day's index since the epoch.
type Record struct {
	Word     string `json:"word"`
	DayIndex int    `json:"dayIndex"`
}

// DateKey returns YYYY-MM-DD for t in its own location.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// WordForDate picks the word for the calendar day containing date.
//
// date and epoch are each reduced to their calendar day in their own
// location, so the time of day never matters. Days are counted between UTC
// midnights of those calendar days; a 23 or 25 hour local day around a DST
// change still counts as one.
func WordForDate(date, epoch time.Time, words []string) (Record, error) {
	if len(words) == 0 {
		return Record{}, ErrNoWords
	}
	day := midnightUTC(date)
	start := midnightUTC(epoch)

	// Unix seconds rather than Sub: a Duration saturates after ~292 years.
	idx := int((day.Unix() - start.Unix()) / secondsPerDay)
	if idx < 0 {
		return Record{}, fmt.Errorf("%w: %s before %s", ErrDateBeforeStart, DateKey(date), DateKey(epoch))
	}
	return Record{Word: words[idx%len(words)], DayIndex: idx}, nil
}

// midnightUTC maps t's calendar day (in t's location) to midnight UTC of the
// same y/m/d.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// UntilNextDay returns how long until the next local midnight after now.
func UntilNextDay(now time.Time) time.Duration {
	y, m, d := now.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	if left := next.Sub(now); left > 0 {
		return left
	}
	return 0
}

// ParseEpoch parses a YYYY-MM-DD start date as local midnight in loc.
func ParseEpoch(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse epoch %q: %w", s, err)
	}
	return t, nil
}

// Selector binds the inputs of WordForDate so callers can ask for "today".
// Nothing here is global; tests inject Now and Location.
type Selector struct {
	Epoch    time.Time
	Words    []string
	Location *time.Location   // nil means time.Local
	Now      func() time.Time // nil means time.Now
}

// Today returns the current local time in the selector's location.
func (s Selector) Today() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}

// ForDate is WordForDate with the selector's epoch and list.
func (s Selector) ForDate(date time.Time) (Record, error) {
	return WordForDate(date, s.Epoch, s.Words)
}

// TodaysWord is WordForDate for the current local date.
func (s Selector) TodaysWord() (Record, error) {
	return s.ForDate(s.Today())
}

// TodayKey is DateKey of the current local date.
func (s Selector) TodayKey() string {
	return DateKey(s.Today())
}
