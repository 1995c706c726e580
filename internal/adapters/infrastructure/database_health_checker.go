package infrastructure

import (
	"context"
	"time"

	"gorm.io/gorm"
	"xisms.app/internal/adapters/database"
	"xisms.app/internal/ports"
)

// DatabaseHealthChecker implements database health checking
type DatabaseHealthChecker struct {
	db *gorm.DB
}

// NewDatabaseHealthChecker creates a new database health checker
func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

// Check pings the database, confirms the code table is migrated and reports
// pool usage with the number of live codes
func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Status:    ports.HealthStatusUnhealthy,
		Details:   make(map[string]interface{}),
	}

	if d.db == nil {
		status.Error = "database instance is nil"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Error = "failed to get underlying database connection"
		return status
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		status.Error = err.Error()
		return status
	}

	conn := d.db.WithContext(ctx)
	if !conn.Migrator().HasTable(&database.VerificationCodeModel{}) {
		status.Error = "verification code table is missing"
		return status
	}

	var live int64
	if err := conn.Model(&database.VerificationCodeModel{}).Where("expires_at > ?", time.Now()).Count(&live).Error; err != nil {
		status.Error = err.Error()
		return status
	}

	stats := sqlDB.Stats()
	status.Status = ports.HealthStatusHealthy
	status.Details["openConnections"] = stats.OpenConnections
	status.Details["inUse"] = stats.InUse
	status.Details["liveCodes"] = live
	return status
}
