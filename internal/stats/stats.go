// Package stats computes the dashboard and history numbers from a
// transaction list. All functions are pure; callers pass the list and a
// reference time.
package stats

import (
	"sort"
	"strings"
	"time"

	"smartspend/internal/core"
)

type Range string

const (
	RangeAll   Range = "all"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
)

// Overview is the home screen summary. Balance covers every transaction;
// income and expense cover only the reference month.
type Overview struct {
	Balance      float64 `json:"balance"`
	Income       float64 `json:"income"`
	Expense      float64 `json:"expense"`
	SpentPercent float64 `json:"spent_percent"`
	Remaining    float64 `json:"remaining"`
}

// Filter selects a slice of history: a time range, an optional category
// and an optional type.
type Filter struct {
	Range     Range
	Category  string
	Type      core.TransactionType
	WeekStart string
	Now       time.Time
}

// Summary aggregates a filtered list for the history screen.
type Summary struct {
	Count         int              `json:"count"`
	TotalSpent    float64          `json:"total_spent"`
	TotalIncome   float64          `json:"total_income"`
	DailyAverage  float64          `json:"daily_average"`
	TopCategories []CategoryAmount `json:"top_categories"`
}

type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// MonthOverview computes the home screen numbers for the month of now.
func MonthOverview(txs []core.Transaction, now time.Time) Overview {
	var o Overview
	for _, t := range txs {
		d, err := t.Time()
		if err != nil {
			continue
		}
		if d.Month() == now.Month() && d.Year() == now.Year() {
			if t.Type == core.Income {
				o.Income += t.Amount
			} else {
				o.Expense += t.Amount
			}
		}
		o.Balance += t.Signed()
	}

	totalMoved := o.Income + o.Expense
	if totalMoved < 1 {
		totalMoved = 1
	}
	o.SpentPercent = o.Expense / totalMoved * 100
	if o.SpentPercent > 100 {
		o.SpentPercent = 100
	}
	o.Remaining = o.Income - o.Expense
	if o.Remaining < 0 {
		o.Remaining = 0
	}
	return o
}

// Bounds returns the inclusive [from, to] span the filter covers.
func (f Filter) Bounds() (time.Time, time.Time) {
	now := f.Now
	to := now
	switch f.Range {
	case RangeWeek:
		return startOfWeek(now, f.WeekStart), to
	case RangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), to
	default:
		// The history screen uses a far past date for "all".
		return time.Date(2000, time.January, 1, 0, 0, 0, 0, now.Location()), to
	}
}

// Apply returns the transactions matching the filter, preserving order.
func (f Filter) Apply(txs []core.Transaction) []core.Transaction {
	from, to := f.Bounds()
	var out []core.Transaction
	for _, t := range txs {
		d, err := t.Time()
		if err != nil {
			continue
		}
		if d.Before(from) || d.After(to) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(t.Category, f.Category) {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Categories returns the distinct categories present in txs, sorted.
func Categories(txs []core.Transaction) []string {
	seen := make(map[string]struct{})
	for _, t := range txs {
		if t.Category != "" {
			seen[t.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Summarize aggregates txs over the inclusive [from, to] day span. The
// daily average and top categories consider expenses only, matching the
// history screen.
func Summarize(txs []core.Transaction, from, to time.Time) Summary {
	s := Summary{Count: len(txs)}

	byCategory := make(map[string]float64)
	for _, t := range txs {
		if t.Type == core.Income {
			s.TotalIncome += t.Amount
			continue
		}
		s.TotalSpent += t.Amount
		byCategory[t.Category] += t.Amount
	}

	days := daysBetween(from, to)
	if days > 0 {
		s.DailyAverage = s.TotalSpent / float64(days)
	}

	for c, amount := range byCategory {
		s.TopCategories = append(s.TopCategories, CategoryAmount{Category: c, Amount: amount})
	}
	sort.Slice(s.TopCategories, func(i, j int) bool {
		if s.TopCategories[i].Amount != s.TopCategories[j].Amount {
			return s.TopCategories[i].Amount > s.TopCategories[j].Amount
		}
		return s.TopCategories[i].Category < s.TopCategories[j].Category
	})

	return s
}

// startOfWeek truncates now to the preferred first day of the week.
func startOfWeek(now time.Time, weekStart string) time.Time {
	day := time.Monday
	if weekStart == core.WeekStartSunday {
		day = time.Sunday
	}

	offset := int(now.Weekday()) - int(day)
	if offset < 0 {
		offset += 7
	}
	start := now.AddDate(0, 0, -offset)
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
}

// daysBetween counts calendar days in the inclusive span.
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	if toDay.Before(fromDay) {
		return 0
	}
	return int(toDay.Sub(fromDay).Hours()/24) + 1
}
