package view

import (
	"strings"
	"time"

	"github.com/ribgsilva/studyvault/business/v1/note"
)

// Filter returns the notes matching every criterion, keeping their input order.
//
// The size bucket is checked against the number of notes in the whole set, so a
// bucket that does not match the total empties the result.
func Filter(notes []note.Note, c Criteria, now time.Time) []note.Note {
	out := make([]note.Note, 0, len(notes))
	if !sizeMatches(ParseSizeBucket(string(c.Size)), len(notes)) {
		return out
	}

	term := strings.ToLower(c.Search)
	since, bounded := rangeStart(ParseDateRange(string(c.Date)), now)

	for _, n := range notes {
		if term != "" && !strings.Contains(strings.ToLower(n.Title), term) && !strings.Contains(strings.ToLower(n.Content), term) {
			continue
		}
		if bounded && createdAt(n, now).Before(since) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func sizeMatches(b SizeBucket, total int) bool {
	switch b {
	case Small:
		return total >= 1 && total <= 5
	case Medium:
		return total >= 6 && total <= 15
	case Large:
		return total >= 16
	default:
		return true
	}
}

// rangeStart returns the earliest creation time the range accepts
func rangeStart(r DateRange, now time.Time) (time.Time, bool) {
	today := StartOfDay(now)
	switch r {
	case Today:
		return today, true
	case Week:
		return today.AddDate(0, 0, -7), true
	case Month:
		return today.AddDate(0, -1, 0), true
	case Year:
		return today.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// StartOfDay returns midnight of the day of t, in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// createdAt treats a note without a creation time as created now
func createdAt(n note.Note, now time.Time) time.Time {
	if n.CreatedAt.IsZero() {
		return now
	}
	return n.CreatedAt
}
