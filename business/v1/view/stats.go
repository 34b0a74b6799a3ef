package view

import (
	"math"
	"sort"
	"time"

	"github.com/ribgsilva/studyvault/business/v1/note"
)

// topLanguages is how many languages the summary keeps
const topLanguages = 5

// LanguageCount is how many code notes use a language
type LanguageCount struct {
	Language string `json:"language" example:"Go"`
	Count    int    `json:"count" example:"3"`
}

// TypeStats is the count and share of one content type
type TypeStats struct {
	Count      int     `json:"count" example:"4"`
	Percentage float64 `json:"percentage" example:"57.1"`
}

// Summary aggregates a note set
type Summary struct {
	Total          int             `json:"totalCount" example:"7"`
	Text           TypeStats       `json:"text"`
	Code           TypeStats       `json:"code"`
	Image          TypeStats       `json:"image"`
	NotesToday     int             `json:"notesToday" example:"7"`
	NotesThisWeek  int             `json:"notesThisWeek" example:"7"`
	NotesThisMonth int             `json:"notesThisMonth" example:"7"`
	TopLanguages   []LanguageCount `json:"topLanguages"`
	AvgPerDay      float64         `json:"avgPerDay" example:"1.11"`
}

// Summarize computes the statistics of the full note set of a user
func Summarize(notes []note.Note, now time.Time) Summary {
	total := len(notes)
	counts := make(map[note.ContentType]int, len(note.ContentTypes))
	for _, n := range notes {
		counts[n.ContentType]++
	}

	today := StartOfDay(now)
	return Summary{
		Total:          total,
		Text:           TypeStats{Count: counts[note.Text], Percentage: Percentage(counts[note.Text], total)},
		Code:           TypeStats{Count: counts[note.Code], Percentage: Percentage(counts[note.Code], total)},
		Image:          TypeStats{Count: counts[note.Image], Percentage: Percentage(counts[note.Image], total)},
		NotesToday:     CountCreatedSince(notes, today, now),
		NotesThisWeek:  CountCreatedSince(notes, today.AddDate(0, 0, -7), now),
		NotesThisMonth: CountCreatedSince(notes, today.AddDate(0, -1, 0), now),
		TopLanguages:   TopLanguages(notes, topLanguages),
		AvgPerDay:      AvgPerDay(notes, now),
	}
}

// Percentage returns count/total as a percentage with one decimal, 0 for an empty total
func Percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round(float64(count)/float64(total)*100, 1)
}

// CountCreatedSince counts the notes created at or after anchor. Notes without a
// creation time count as created now.
func CountCreatedSince(notes []note.Note, anchor, now time.Time) int {
	c := 0
	for _, n := range notes {
		if !createdAt(n, now).Before(anchor) {
			c++
		}
	}
	return c
}

// TopLanguages returns the most used languages of code notes, most used first.
// Ties keep the order in which the languages were first seen.
func TopLanguages(notes []note.Note, limit int) []LanguageCount {
	langs := make([]LanguageCount, 0)
	index := make(map[string]int)
	for _, n := range notes {
		if n.ContentType != note.Code {
			continue
		}
		lang := n.Language()
		if lang == "" {
			continue
		}
		if i, ok := index[lang]; ok {
			langs[i].Count++
			continue
		}
		index[lang] = len(langs)
		langs = append(langs, LanguageCount{Language: lang, Count: 1})
	}

	sort.SliceStable(langs, func(i, j int) bool {
		return langs[i].Count > langs[j].Count
	})
	if len(langs) > limit {
		langs = langs[:limit]
	}
	return langs
}

// AvgPerDay returns the notes created per day since the oldest note, with two
// decimals. Notes without a creation time are left out when finding the oldest.
func AvgPerDay(notes []note.Note, now time.Time) float64 {
	var oldest time.Time
	for _, n := range notes {
		if n.CreatedAt.IsZero() {
			continue
		}
		if oldest.IsZero() || n.CreatedAt.Before(oldest) {
			oldest = n.CreatedAt
		}
	}
	if oldest.IsZero() {
		return 0
	}

	days := math.Ceil(now.Sub(oldest).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return round(float64(len(notes))/days, 2)
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
