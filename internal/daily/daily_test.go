package daily

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"
)

var testWords = []string{"KATEN", "SKÖLP", "ÅSKAN", "PASSA"}

func stockholm(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestWordForDate(t *testing.T) {
	loc := stockholm(t)
	epoch := time.Date(2022, 2, 10, 0, 0, 0, 0, loc)

	tests := []struct {
		name string
		date time.Time
		want Record
	}{
		{"epoch day", time.Date(2022, 2, 10, 0, 0, 0, 0, loc), Record{"KATEN", 0}},
		{"late on epoch day", time.Date(2022, 2, 10, 23, 59, 59, 0, loc), Record{"KATEN", 0}},
		{"next day", time.Date(2022, 2, 11, 0, 0, 1, 0, loc), Record{"SKÖLP", 1}},
		{"last word", time.Date(2022, 2, 13, 12, 0, 0, 0, loc), Record{"PASSA", 3}},
		{"wraps around", time.Date(2022, 2, 14, 8, 0, 0, 0, loc), Record{"KATEN", 4}},
		{"far future", time.Date(2022, 2, 10, 0, 0, 0, 0, loc).AddDate(0, 0, 1001), Record{"SKÖLP", 1001}},
		{"beyond duration range", time.Date(2022, 2, 10, 12, 0, 0, 0, loc).AddDate(0, 0, 120000), Record{"KATEN", 120000}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := WordForDate(tc.date, epoch, testWords)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestWordForDateBeforeStart(t *testing.T) {
	loc := stockholm(t)
	epoch := time.Date(2022, 2, 10, 0, 0, 0, 0, loc)
	for _, d := range []time.Time{
		time.Date(2022, 2, 9, 23, 59, 59, 0, loc),
		time.Date(2021, 6, 1, 12, 0, 0, 0, loc),
	} {
		if _, err := WordForDate(d, epoch, testWords); !errors.Is(err, ErrDateBeforeStart) {
			t.Fatalf("%s: expected ErrDateBeforeStart, got %v", d, err)
		}
	}
}

func TestWordForDateAcrossDST(t *testing.T) {
	loc := stockholm(t)
	// Clocks jump forward on 2024-03-31, so that local day has 23 hours.
	epoch := time.Date(2024, 3, 30, 0, 0, 0, 0, loc)
	got, err := WordForDate(time.Date(2024, 4, 1, 0, 30, 0, 0, loc), epoch, testWords)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DayIndex != 2 {
		t.Fatalf("expected day 2, got %d", got.DayIndex)
	}

	// And back on 2024-10-27 (25 hours).
	epoch = time.Date(2024, 10, 26, 0, 0, 0, 0, loc)
	got, _ = WordForDate(time.Date(2024, 10, 27, 23, 30, 0, 0, loc), epoch, testWords)
	if got.DayIndex != 1 {
		t.Fatalf("expected day 1, got %d", got.DayIndex)
	}
}

func TestWordForDateDeterministic(t *testing.T) {
	epoch := time.Date(2022, 2, 10, 0, 0, 0, 0, time.UTC)
	d := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	a, err1 := WordForDate(d, epoch, testWords)
	b, err2 := WordForDate(d.Add(10*time.Hour), epoch, testWords)
	if err1 != nil || err2 != nil || a != b {
		t.Fatalf("expected identical records for the same day, got %+v/%v and %+v/%v", a, err1, b, err2)
	}
}

func TestWordForDateEmptyList(t *testing.T) {
	now := time.Now()
	if _, err := WordForDate(now, now, nil); !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
}

func TestSelector(t *testing.T) {
	loc := stockholm(t)
	epoch, err := ParseEpoch("2022-02-10", loc)
	if err != nil {
		t.Fatalf("parse epoch: %v", err)
	}
	// 23:30 UTC on the 11th is already the 12th in Stockholm.
	sel := Selector{
		Epoch:    epoch,
		Words:    testWords,
		Location: loc,
		Now:      func() time.Time { return time.Date(2022, 2, 11, 23, 30, 0, 0, time.UTC) },
	}
	rec, err := sel.TodaysWord()
	if err != nil {
		t.Fatalf("todays word: %v", err)
	}
	if rec != (Record{"ÅSKAN", 2}) {
		t.Fatalf("expected ÅSKAN on day 2, got %+v", rec)
	}
	if key := sel.TodayKey(); key != "2022-02-12" {
		t.Fatalf("expected 2022-02-12, got %s", key)
	}

	if _, err := ParseEpoch("10/02/2022", loc); err == nil {
		t.Fatal("expected error for malformed epoch")
	}
}

func TestUntilNextDay(t *testing.T) {
	loc := stockholm(t)
	now := time.Date(2024, 5, 5, 22, 15, 30, 0, loc)
	if got, want := UntilNextDay(now), time.Hour+44*time.Minute+30*time.Second; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestDateKey(t *testing.T) {
	if got := DateKey(time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC)); got != "2024-01-02" {
		t.Fatalf("expected 2024-01-02, got %s", got)
	}
}
