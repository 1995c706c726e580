package ports

import (
	"context"
	"time"
)

// CodeData represents an issued one-time code for persistence.
// Only the hash of the code is kept.
type CodeData struct {
	ID        string
	Email     string
	CodeHash  string
	Attempts  int
	ExpiresAt time.Time
	CreatedAt time.Time
}

// CodeStore defines the contract for one-time code persistence. At most one
// live code exists per email; Save replaces any previous one.
type CodeStore interface {
	Save(ctx context.Context, code *CodeData) error
	FindByEmail(ctx context.Context, email string) (*CodeData, error)
	// ConsumeByEmail atomically removes the code for email if its hash is still
	// codeHash. It returns a NotFound error when another caller got there first.
	ConsumeByEmail(ctx context.Context, email, codeHash string) error
	// RecordFailedAttempt atomically increments the attempt counter and removes
	// the code once maxAttempts is reached. It returns the new count.
	RecordFailedAttempt(ctx context.Context, email string, maxAttempts int) (int, error)
	DeleteByEmail(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
