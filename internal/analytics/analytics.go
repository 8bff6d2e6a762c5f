// Package analytics aggregates stored transactions into the shapes the
// tracker reports on: summary totals, category breakdowns and time-bucketed
// trends. All arithmetic stays in integer paise; decimal only enters at
// formatting time.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/saicharanbm/finTrack/internal/models"
)

// Range selects the reporting window, counted back from an anchor date.
type Range string

const (
	RangeWeek       Range = "week"
	RangeMonth      Range = "month"
	RangeThreeMonth Range = "3month"
	RangeYear       Range = "year"
	RangeAll        Range = "all"
)

// ParseRange validates a range string from user input.
func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case RangeWeek, RangeMonth, RangeThreeMonth, RangeYear, RangeAll:
		return Range(s), nil
	}
	return "", fmt.Errorf("unknown range %q (want week, month, 3month, year or all)", s)
}

// Start returns the inclusive lower bound of the window ending at anchor.
// ok is false for RangeAll, which has no lower bound.
func (r Range) Start(anchor time.Time) (start time.Time, ok bool) {
	switch r {
	case RangeWeek:
		return anchor.AddDate(0, 0, -7), true
	case RangeMonth:
		return anchor.AddDate(0, -1, 0), true
	case RangeThreeMonth:
		return anchor.AddDate(0, -3, 0), true
	case RangeYear:
		return anchor.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// Summary holds the headline totals for a window.
type Summary struct {
	IncomePaise  int64 `json:"incomePaise,string"`
	ExpensePaise int64 `json:"expensePaise,string"`
	BalancePaise int64 `json:"balancePaise,string"`
	Count        int   `json:"count"`
}

// Summarize computes income, expense and balance totals over records.
func Summarize(records []models.TransactionRecord) Summary {
	var s Summary
	for _, record := range records {
		switch record.Direction {
		case models.DirectionIncome:
			s.IncomePaise += record.AmountPaise
		case models.DirectionExpense:
			s.ExpensePaise += record.AmountPaise
		}
		s.Count++
	}
	s.BalancePaise = s.IncomePaise - s.ExpensePaise
	return s
}

// CategoryTotal is one slice of a category breakdown.
type CategoryTotal struct {
	Category   models.Category `json:"category"`
	TotalPaise int64           `json:"totalPaise,string"`
	Count      int             `json:"count"`
}

// ByCategory breaks down records of one direction per category, largest
// total first.
func ByCategory(records []models.TransactionRecord, direction models.Direction) []CategoryTotal {
	totals := make(map[models.Category]*CategoryTotal)
	for _, record := range records {
		if record.Direction != direction {
			continue
		}
		t, ok := totals[record.Category]
		if !ok {
			t = &CategoryTotal{Category: record.Category}
			totals[record.Category] = t
		}
		t.TotalPaise += record.AmountPaise
		t.Count++
	}

	out := make([]CategoryTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPaise != out[j].TotalPaise {
			return out[i].TotalPaise > out[j].TotalPaise
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// TrendPoint is one time bucket of a trend series.
type TrendPoint struct {
	Bucket       string `json:"bucket"`
	IncomePaise  int64  `json:"incomePaise,string"`
	ExpensePaise int64  `json:"expensePaise,string"`
}

// Trend buckets records over time: daily for week and month windows,
// monthly otherwise. Buckets are emitted in chronological order and only
// for periods that contain transactions.
func Trend(records []models.TransactionRecord, r Range) []TrendPoint {
	layout := "2006-01"
	if r == RangeWeek || r == RangeMonth {
		layout = "2006-01-02"
	}

	buckets := make(map[string]*TrendPoint)
	for _, record := range records {
		key := record.Date.Format(layout)
		point, ok := buckets[key]
		if !ok {
			point = &TrendPoint{Bucket: key}
			buckets[key] = point
		}
		switch record.Direction {
		case models.DirectionIncome:
			point.IncomePaise += record.AmountPaise
		case models.DirectionExpense:
			point.ExpensePaise += record.AmountPaise
		}
	}

	out := make([]TrendPoint, 0, len(buckets))
	for _, point := range buckets {
		out = append(out, *point)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Bucket < out[j].Bucket
	})
	return out
}
