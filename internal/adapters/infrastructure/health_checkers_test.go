package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"xisms.app/internal/adapters/database"
	"xisms.app/internal/adapters/external"
	"xisms.app/internal/config"
	mocks "xisms.app/internal/mocks"
	"xisms.app/internal/ports"
)

func TestDatabaseHealthChecker(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.SetMaxOpenConns(1)
		require.NoError(t, db.AutoMigrate(&database.VerificationCodeModel{}))
		require.NoError(t, db.Create(&database.VerificationCodeModel{
			ID:        "id-1",
			Email:     "a@b.com",
			CodeHash:  "hash",
			ExpiresAt: time.Now().Add(time.Hour),
			CreatedAt: time.Now(),
		}).Error)

		status := NewDatabaseHealthChecker(db).Check(context.Background())

		assert.True(t, status.IsHealthy())
		assert.Equal(t, "database", status.Component)
		assert.Contains(t, status.Details, "openConnections")
		assert.Equal(t, int64(1), status.Details["liveCodes"])
	})

	t.Run("NotMigrated", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)

		status := NewDatabaseHealthChecker(db).Check(context.Background())

		assert.False(t, status.IsHealthy())
		assert.Equal(t, "verification code table is missing", status.Error)
	})

	t.Run("NilDatabase", func(t *testing.T) {
		status := NewDatabaseHealthChecker(nil).Check(context.Background())

		assert.False(t, status.IsHealthy())
		assert.Equal(t, "database instance is nil", status.Error)
	})

	t.Run("Closed", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		status := NewDatabaseHealthChecker(db).Check(context.Background())

		assert.False(t, status.IsHealthy())
		assert.NotEmpty(t, status.Error)
	})
}

func TestEmailProviderHealthChecker(t *testing.T) {
	provider := mocks.NewEmailProvider(t)
	provider.EXPECT().Name().Return("ses")
	cfg := mocks.NewConfigProvider(t)
	cfg.EXPECT().GetEmailConfig().Return(ports.EmailConfig{
		From:        "noreply@xisms.app",
		SendTimeout: 10 * time.Second,
		Region:      "us-east-2",
	})

	status := NewEmailProviderHealthChecker(provider, cfg).Check(context.Background())

	assert.True(t, status.IsHealthy())
	assert.Equal(t, "ses", status.Details["provider"])
	assert.Equal(t, "us-east-2", status.Details["region"])
	assert.Equal(t, "10s", status.Details["sendTimeout"])

	missing := NewEmailProviderHealthChecker(nil, nil).Check(context.Background())
	assert.False(t, missing.IsHealthy())
}

func TestCodeStoreHealthChecker(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		status := NewCodeStoreHealthChecker(external.NewMemoryCodeStore(), "memory").Check(context.Background())

		assert.True(t, status.IsHealthy())
		assert.Equal(t, 0, status.Details["codes"])
	})

	t.Run("RedisReachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store, err := external.NewRedisCodeStoreAdapter(&config.RedisConfig{
			Addr: mr.Addr(), DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1,
		})
		require.NoError(t, err)

		status := NewCodeStoreHealthChecker(store, "redis").Check(context.Background())
		assert.True(t, status.IsHealthy())

		mr.Close()
		status = NewCodeStoreHealthChecker(store, "redis").Check(context.Background())
		assert.False(t, status.IsHealthy())
	})

	t.Run("Missing", func(t *testing.T) {
		status := NewCodeStoreHealthChecker(nil, "memory").Check(context.Background())
		assert.False(t, status.IsHealthy())
	})
}

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	system := NewSystemHealthChecker(map[string]ports.HealthChecker{
		"codeStore": NewCodeStoreHealthChecker(external.NewMemoryCodeStore(), "memory"),
		"database":  nil,
	})

	results := system.CheckAll(context.Background())

	require.Len(t, results, 1)
	assert.True(t, results["codeStore"].IsHealthy())
}
