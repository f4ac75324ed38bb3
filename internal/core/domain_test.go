package core

import (
	"testing"
	"time"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{
			name: "valid user",
			user: User{Name: "Ann", Email: "ann@x.com", Password: "p"},
		},
		{
			name:    "empty name",
			user:    User{Name: "  ", Email: "ann@x.com", Password: "p"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "missing at sign",
			user:    User{Name: "Ann", Email: "ann.x.com", Password: "p"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "empty password",
			user:    User{Name: "Ann", Email: "ann@x.com"},
			wantErr: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.user.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	valid := Transaction{
		ID:       "1",
		Type:     Expense,
		Amount:   12.50,
		Category: "Food & Dining",
		Date:     "2024-01-01T00:00:00Z",
	}

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{name: "valid", mutate: func(*Transaction) {}},
		{
			name:    "unknown type",
			mutate:  func(tx *Transaction) { tx.Type = "transfer" },
			wantErr: ErrInvalidType,
		},
		{
			name:    "zero amount",
			mutate:  func(tx *Transaction) { tx.Amount = 0 },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(tx *Transaction) { tx.Amount = -5 },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "blank category",
			mutate:  func(tx *Transaction) { tx.Category = " " },
			wantErr: ErrEmptyCategory,
		},
		{
			name:    "unparseable date",
			mutate:  func(tx *Transaction) { tx.Date = "yesterday" },
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			if err := tx.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransaction_Time(t *testing.T) {
	tests := []struct {
		date string
		want time.Time
	}{
		{"2024-01-01T00:00:00Z", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := Transaction{Date: tt.date}.Time()
			if err != nil {
				t.Fatalf("Time() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Time() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := (Transaction{Date: "not-a-date"}).Time(); err == nil {
		t.Error("Time() should fail on unparseable input")
	}
}

func TestTransaction_Signed(t *testing.T) {
	if got := (Transaction{Type: Income, Amount: 10}).Signed(); got != 10 {
		t.Errorf("income Signed() = %v, want 10", got)
	}
	if got := (Transaction{Type: Expense, Amount: 10}).Signed(); got != -10 {
		t.Errorf("expense Signed() = %v, want -10", got)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ann@X.Com "); got != "ann@x.com" {
		t.Errorf("NormalizeEmail() = %q", got)
	}
}

func TestNewTransactionID(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := NewTransactionID(now); got != "1704067200000" {
		t.Errorf("NewTransactionID() = %q", got)
	}
}

func TestPreferences_Validate(t *testing.T) {
	if err := DefaultPreferences().Validate(); err != nil {
		t.Fatalf("default preferences should validate: %v", err)
	}

	p := DefaultPreferences()
	p.Currency = "GBP"
	if err := p.Validate(); err != ErrInvalidCurrency {
		t.Errorf("Validate() = %v, want %v", err, ErrInvalidCurrency)
	}

	p = DefaultPreferences()
	p.WeekStart = "Wed"
	if err := p.Validate(); err != ErrInvalidWeekStart {
		t.Errorf("Validate() = %v, want %v", err, ErrInvalidWeekStart)
	}
}
