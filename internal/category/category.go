package category

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type classifies a category as money coming in or going out.
type Type string

const (
	TypeIncome  Type = "Income"
	TypeExpense Type = "Expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// TransactionType is the discriminant between plain buckets and
// schedule-driven ones.
type TransactionType string

const (
	OneTime   TransactionType = "one-time"
	Recurring TransactionType = "recurring"
)

func (t TransactionType) Valid() bool {
	return t == OneTime || t == Recurring
}

// Frequency is how often a recurring category generates a transaction.
type Frequency string

const (
	Daily     Frequency = "daily"
	Weekly    Frequency = "weekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Monthly, Quarterly, Yearly:
		return true
	}

	return false
}

// Category is a named bucket for transactions. Recurring categories carry a
// schedule cursor and auto-generate one transaction per period.
type Category struct {
	ID              uuid.UUID
	Name            string
	Type            Type
	Icon            string
	Color           string
	Description     string
	TransactionType TransactionType

	// IsRecurring is denormalized from TransactionType so stores can filter
	// on it directly. applyRecurrence keeps the two in sync.
	IsRecurring bool

	Frequency         *Frequency
	DefaultAmount     *int64 // cents
	IsActive          bool
	LastProcessedDate *time.Time
	NextProcessedDate *time.Time

	Budget    *int64 // cents, informational spending cap
	IsDefault bool
	CreatedBy *uuid.UUID // nil for default categories

	CreatedAt time.Time
	UpdatedAt *time.Time
}

var ErrNotFound = errors.New("category not found")

// ValidationError reports a malformed category configuration. It names the
// offending field so handlers can surface it to the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
