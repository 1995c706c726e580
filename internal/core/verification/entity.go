package verification

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"xisms.app/pkg/errors"
)

// State is a stage of a code submission
type State int

const (
	StateIdle State = iota
	StateValidating
	StateRejectedInput
	StateSending
	StateSuccess
	StateFailed
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateRejectedInput:
		return "rejected_input"
	case StateSending:
		return "sending"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition follows s
func (s State) IsTerminal() bool {
	return s == StateRejectedInput || s == StateSuccess || s == StateFailed
}

// TerminalState maps the result of a send attempt to the state it ends in
func TerminalState(err error) State {
	switch {
	case err == nil:
		return StateSuccess
	case errors.IsInvalidInputError(err):
		return StateRejectedInput
	default:
		return StateFailed
	}
}

// Verification outcomes recorded in metrics
const (
	OutcomeVerified = "verified"
	OutcomeMismatch = "mismatch"
	OutcomeExpired  = "expired"
	OutcomeMissing  = "missing"
	OutcomeLocked   = "locked"
)

// Code is an issued one-time code. The plain value only exists between
// generation and delivery; persistence keeps Hash.
type Code struct {
	ID        string
	Email     string
	Value     string
	Hash      string
	Attempts  int
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Generator produces the plain value of a new code
type Generator func(length int) (string, error)

// GenerateNumericCode returns a uniformly random decimal string of the given length
func GenerateNumericCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("code length must be positive, got %d", length)
	}

	var sb strings.Builder
	sb.Grow(length)
	ten := big.NewInt(10)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("read random digit: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}

// HashCode returns the hex SHA-256 of a code bound to its email
func HashCode(email, code string) string {
	sum := sha256.Sum256([]byte(NormalizeEmail(email) + ":" + code))
	return hex.EncodeToString(sum[:])
}

// NormalizeEmail is the key under which codes are stored
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewCode creates a code for email that expires after ttl
func NewCode(email, value string, ttl time.Duration, now time.Time) *Code {
	return &Code{
		ID:        uuid.New().String(),
		Email:     NormalizeEmail(email),
		Value:     value,
		Hash:      HashCode(email, value),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

// IsExpired checks if the code has expired at the given instant
func (c *Code) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Matches compares a submitted value against the stored hash in constant time
func (c *Code) Matches(submitted string) bool {
	candidate := HashCode(c.Email, strings.TrimSpace(submitted))
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(c.Hash)) == 1
}
