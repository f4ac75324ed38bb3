package stats

import (
	"testing"
	"time"

	"smartspend/internal/core"
)

func expense(amount float64, category, date string) core.Transaction {
	return core.Transaction{Type: core.Expense, Amount: amount, Category: category, Date: date}
}

func income(amount float64, category, date string) core.Transaction {
	return core.Transaction{Type: core.Income, Amount: amount, Category: category, Date: date}
}

func TestMonthOverview(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	txs := []core.Transaction{
		income(1000, "Salary", "2024-06-01T00:00:00Z"),
		expense(250, "Food & Dining", "2024-06-10T00:00:00Z"),
		// Previous month: counts toward balance only.
		expense(100, "Shopping", "2024-05-20T00:00:00Z"),
		income(50, "Gift", "2024-05-01T00:00:00Z"),
		// Unparseable date is skipped entirely.
		expense(999, "Other", "garbage"),
	}

	o := MonthOverview(txs, now)

	if o.Income != 1000 {
		t.Errorf("Income = %v, want 1000", o.Income)
	}
	if o.Expense != 250 {
		t.Errorf("Expense = %v, want 250", o.Expense)
	}
	if o.Balance != 700 {
		t.Errorf("Balance = %v, want 700", o.Balance)
	}
	if o.Remaining != 750 {
		t.Errorf("Remaining = %v, want 750", o.Remaining)
	}
	if want := 250.0 / 1250.0 * 100; o.SpentPercent != want {
		t.Errorf("SpentPercent = %v, want %v", o.SpentPercent, want)
	}
}

func TestMonthOverview_Empty(t *testing.T) {
	o := MonthOverview(nil, time.Now())
	if o.Balance != 0 || o.Income != 0 || o.Expense != 0 || o.SpentPercent != 0 {
		t.Errorf("empty overview should be all zero, got %+v", o)
	}
}

func TestMonthOverview_ExpensesOnlyCapsAt100(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	o := MonthOverview([]core.Transaction{expense(10, "Other", "2024-06-01")}, now)
	if o.SpentPercent != 100 {
		t.Errorf("SpentPercent = %v, want 100", o.SpentPercent)
	}
	if o.Remaining != 0 {
		t.Errorf("Remaining = %v, want 0", o.Remaining)
	}
}

func TestFilter_Apply(t *testing.T) {
	// A Saturday. The week started Monday 2024-06-10 (or Sunday 2024-06-09).
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	txs := []core.Transaction{
		expense(1, "Food & Dining", "2024-06-14"),  // this week
		expense(2, "Shopping", "2024-06-09"),       // Sunday before
		expense(3, "Food & Dining", "2024-06-03"),  // this month, earlier week
		income(4, "Salary", "2024-06-12"),          // this week
		expense(5, "Shopping", "2023-12-25"),       // last year
	}

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []float64 // amounts double as identifiers here
	}{
		{
			name:    "all",
			filter:  Filter{Range: RangeAll, Now: now},
			wantIDs: []float64{1, 2, 3, 4, 5},
		},
		{
			name:    "this month",
			filter:  Filter{Range: RangeMonth, Now: now},
			wantIDs: []float64{1, 2, 3, 4},
		},
		{
			name:    "this week starting Monday",
			filter:  Filter{Range: RangeWeek, WeekStart: core.WeekStartMonday, Now: now},
			wantIDs: []float64{1, 4},
		},
		{
			name:    "this week starting Sunday",
			filter:  Filter{Range: RangeWeek, WeekStart: core.WeekStartSunday, Now: now},
			wantIDs: []float64{1, 2, 4},
		},
		{
			name:    "category",
			filter:  Filter{Range: RangeAll, Category: "food & dining", Now: now},
			wantIDs: []float64{1, 3},
		},
		{
			name:    "expenses only this month",
			filter:  Filter{Range: RangeMonth, Type: core.Expense, Now: now},
			wantIDs: []float64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(txs)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Apply() returned %d transactions, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].Amount != want {
					t.Errorf("Apply()[%d].Amount = %v, want %v", i, got[i].Amount, want)
				}
			}
		})
	}
}

func TestCategories(t *testing.T) {
	txs := []core.Transaction{
		expense(1, "Shopping", "2024-06-01"),
		expense(2, "Food & Dining", "2024-06-02"),
		expense(3, "Shopping", "2024-06-03"),
	}

	got := Categories(txs)
	want := []string{"Food & Dining", "Shopping"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSummarize(t *testing.T) {
	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 10, 23, 0, 0, 0, time.UTC)

	txs := []core.Transaction{
		expense(30, "Food & Dining", "2024-06-02"),
		expense(20, "Food & Dining", "2024-06-05"),
		expense(40, "Shopping", "2024-06-07"),
		income(500, "Salary", "2024-06-01"),
	}

	s := Summarize(txs, from, to)

	if s.Count != 4 {
		t.Errorf("Count = %d, want 4", s.Count)
	}
	if s.TotalSpent != 90 {
		t.Errorf("TotalSpent = %v, want 90", s.TotalSpent)
	}
	if s.TotalIncome != 500 {
		t.Errorf("TotalIncome = %v, want 500", s.TotalIncome)
	}
	if s.DailyAverage != 9 {
		t.Errorf("DailyAverage = %v, want 9 (90 over 10 days)", s.DailyAverage)
	}
	if len(s.TopCategories) != 2 {
		t.Fatalf("TopCategories = %v", s.TopCategories)
	}
	if s.TopCategories[0].Category != "Food & Dining" || s.TopCategories[0].Amount != 50 {
		t.Errorf("TopCategories[0] = %+v", s.TopCategories[0])
	}
	if s.TopCategories[1].Category != "Shopping" || s.TopCategories[1].Amount != 40 {
		t.Errorf("TopCategories[1] = %+v", s.TopCategories[1])
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day",
			from: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "inclusive span",
			from: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			want: 10,
		},
		{
			name: "reversed",
			from: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("daysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	// Saturday June 15 2024.
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	monday := startOfWeek(now, core.WeekStartMonday)
	if monday.Day() != 10 || monday.Weekday() != time.Monday {
		t.Errorf("startOfWeek(Mon) = %v", monday)
	}

	sunday := startOfWeek(now, core.WeekStartSunday)
	if sunday.Day() != 9 || sunday.Weekday() != time.Sunday {
		t.Errorf("startOfWeek(Sun) = %v", sunday)
	}

	// A Sunday with Sunday start is its own week start.
	sun := time.Date(2024, time.June, 9, 6, 0, 0, 0, time.UTC)
	if got := startOfWeek(sun, core.WeekStartSunday); got.Day() != 9 {
		t.Errorf("startOfWeek on Sunday = %v", got)
	}
}
