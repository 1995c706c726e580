package external

import (
	"context"
	"sync"
	"time"

	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
)

// MemoryCodeStore keeps issued codes in process memory. Codes are lost on restart.
type MemoryCodeStore struct {
	data  map[string]ports.CodeData
	mutex sync.RWMutex
	now   func() time.Time
}

func NewMemoryCodeStore() *MemoryCodeStore {
	return &MemoryCodeStore{
		data: make(map[string]ports.CodeData),
		now:  time.Now,
	}
}

func (s *MemoryCodeStore) Save(ctx context.Context, code *ports.CodeData) error {
	if code == nil {
		return errors.NewInvalidInputError("code cannot be nil")
	}
	if code.Email == "" {
		return errors.NewInvalidInputError("code email cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[code.Email] = *code
	return nil
}

func (s *MemoryCodeStore) FindByEmail(ctx context.Context, email string) (*ports.CodeData, error) {
	if email == "" {
		return nil, errors.NewInvalidInputError("email cannot be empty")
	}

	s.mutex.RLock()
	code, exists := s.data[email]
	s.mutex.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError("code not found")
	}
	return &code, nil
}

// ConsumeByEmail removes the code for email if it still carries codeHash
func (s *MemoryCodeStore) ConsumeByEmail(ctx context.Context, email, codeHash string) error {
	if email == "" {
		return errors.NewInvalidInputError("email cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	code, exists := s.data[email]
	if !exists || code.CodeHash != codeHash {
		return errors.NewNotFoundError("code not found")
	}
	delete(s.data, email)
	return nil
}

// RecordFailedAttempt counts a wrong guess and drops the code at maxAttempts
func (s *MemoryCodeStore) RecordFailedAttempt(ctx context.Context, email string, maxAttempts int) (int, error) {
	if email == "" {
		return 0, errors.NewInvalidInputError("email cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	code, exists := s.data[email]
	if !exists {
		return 0, errors.NewNotFoundError("code not found")
	}

	code.Attempts++
	if maxAttempts > 0 && code.Attempts >= maxAttempts {
		delete(s.data, email)
	} else {
		s.data[email] = code
	}
	return code.Attempts, nil
}

func (s *MemoryCodeStore) DeleteByEmail(ctx context.Context, email string) error {
	if email == "" {
		return errors.NewInvalidInputError("email cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, email)
	return nil
}

func (s *MemoryCodeStore) DeleteExpired(ctx context.Context) (int64, error) {
	now := s.now()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var removed int64
	for email, code := range s.data {
		if !now.Before(code.ExpiresAt) {
			delete(s.data, email)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored codes, expired ones included
func (s *MemoryCodeStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}
