// Package view derives what a user sees from their full note set: the filtered
// list and the statistics summary. Every function is a pure function of its
// arguments, callers pass the current time explicitly.
package view

import "strings"

// DateRange restricts notes by creation time relative to the start of today
type DateRange string

const (
	AllDates DateRange = "all"
	Today    DateRange = "today"
	Week     DateRange = "week"
	Month    DateRange = "month"
	Year     DateRange = "year"
)

// SizeBucket classifies the number of notes in the whole collection
type SizeBucket string

const (
	AllSizes SizeBucket = "all"
	Small    SizeBucket = "small"
	Medium   SizeBucket = "medium"
	Large    SizeBucket = "large"
)

// Criteria is the active view filter
type Criteria struct {
	Search string     `json:"search"`
	Date   DateRange  `json:"date"`
	Size   SizeBucket `json:"size"`
}

// NewCriteria builds the criteria from raw user input. The search is trimmed,
// unknown range and bucket names become all.
func NewCriteria(search, date, size string) Criteria {
	return Criteria{
		Search: strings.TrimSpace(search),
		Date:   ParseDateRange(date),
		Size:   ParseSizeBucket(size),
	}
}

// ParseDateRange returns the range named by s, AllDates for anything unknown
func ParseDateRange(s string) DateRange {
	switch r := DateRange(strings.ToLower(strings.TrimSpace(s))); r {
	case Today, Week, Month, Year:
		return r
	default:
		return AllDates
	}
}

// ParseSizeBucket returns the bucket named by s, AllSizes for anything unknown
func ParseSizeBucket(s string) SizeBucket {
	switch b := SizeBucket(strings.ToLower(strings.TrimSpace(s))); b {
	case Small, Medium, Large:
		return b
	default:
		return AllSizes
	}
}

// Active reports whether any filter narrows the view
func Active(c Criteria) bool {
	return c.Search != "" || ParseDateRange(string(c.Date)) != AllDates || ParseSizeBucket(string(c.Size)) != AllSizes
}
