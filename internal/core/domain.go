package core

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	CurrencyCAD = "CAD"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

const (
	WeekStartMonday = "Mon"
	WeekStartSunday = "Sun"
)

type (
	TransactionType string

	// User is a registered account. The stored JSON shape is closed:
	// exactly these three fields, password kept as-is.
	User struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// UserChanges carries a partial profile update. Zero-valued fields
	// are left untouched; email is never updatable through this path.
	UserChanges struct {
		Name     string
		Password string
	}

	// Transaction is one financial entry. Ownership is determined by the
	// key its containing list is stored under, not by a field here.
	Transaction struct {
		ID          string          `json:"id"`
		Type        TransactionType `json:"type"`
		Amount      float64         `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description,omitempty"`
		Method      string          `json:"method,omitempty"`
		Date        string          `json:"date"`
	}

	Preferences struct {
		Currency      string `json:"currency"`
		WeekStart     string `json:"week_start"`
		ConfirmDelete bool   `json:"confirm_delete"`
	}
)

var (
	ErrDuplicateAccount = errors.New("account already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrNoSession        = errors.New("no active session")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyName        = errors.New("empty name")
	ErrEmptyPassword    = errors.New("empty password")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyCategory    = errors.New("empty category")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrInvalidWeekStart = errors.New("invalid week start")
)

// NormalizeEmail lowercases an email for comparison. Stored records keep
// the casing the user typed; lookups always go through here.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewTransactionID derives an ID from the creation instant, matching the
// millisecond-timestamp scheme existing stored data already uses.
func NewTransactionID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	email := strings.TrimSpace(u.Email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (t TransactionType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidType
	}
}

func (t Transaction) Validate() error {
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if _, err := t.Time(); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// Time parses the ISO date string. Stored dates come from two writers:
// RFC 3339 timestamps and bare YYYY-MM-DD from the date picker.
func (t Transaction) Time() (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, t.Date); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", t.Date)
}

// Signed returns the amount with expenses negated, for balance sums.
func (t Transaction) Signed() float64 {
	if t.Type == Expense {
		return -t.Amount
	}
	return t.Amount
}

// DefaultPreferences matches the profile screen's initial state.
func DefaultPreferences() Preferences {
	return Preferences{
		Currency:      CurrencyCAD,
		WeekStart:     WeekStartMonday,
		ConfirmDelete: true,
	}
}

func (p Preferences) Validate() error {
	switch p.Currency {
	case CurrencyCAD, CurrencyUSD, CurrencyEUR:
	default:
		return ErrInvalidCurrency
	}
	switch p.WeekStart {
	case WeekStartMonday, WeekStartSunday:
	default:
		return ErrInvalidWeekStart
	}
	return nil
}
