package budget

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Budget is an informational spending cap for a category over a date range.
// Nothing enforces it; clients compare it against the ledger.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Limit      int64 // cents
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

var (
	ErrNotFound         = errors.New("budget not found")
	ErrPermissionDenied = errors.New("permission denied")
)
