package external

import (
	"fmt"

	"gorm.io/gorm"
	"xisms.app/internal/adapters/database"
	"xisms.app/internal/config"
	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
)

type CodeStoreFactory struct{}

func NewCodeStoreFactory() *CodeStoreFactory {
	return &CodeStoreFactory{}
}

// CreateCodeStore builds the store selected by cfg.Code.Store. db is only
// consulted for the database store.
func (f *CodeStoreFactory) CreateCodeStore(cfg *config.Config, db *gorm.DB) (ports.CodeStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("config cannot be nil", nil)
	}

	switch cfg.Code.Store {
	case config.CodeStoreMemory:
		return NewMemoryCodeStore(), nil
	case config.CodeStoreRedis:
		store, err := NewRedisCodeStoreAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.CodeStoreDatabase:
		if db == nil {
			return nil, errors.NewConfigurationError("database code store requires a database connection", nil)
		}
		return database.NewCodeRepositoryAdapter(db), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported code store: %s", cfg.Code.Store.String()), nil)
	}
}
