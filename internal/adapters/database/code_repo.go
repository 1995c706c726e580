package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
)

// VerificationCodeModel represents the database model for issued codes
type VerificationCodeModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Email     string    `gorm:"uniqueIndex;not null"`
	CodeHash  string    `gorm:"size:64;not null"`
	Attempts  int       `gorm:"not null;default:0"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

func (VerificationCodeModel) TableName() string {
	return "verification_codes"
}

// CodeRepositoryAdapter implements the CodeStore port using GORM
type CodeRepositoryAdapter struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCodeRepositoryAdapter creates a new code repository adapter
func NewCodeRepositoryAdapter(db *gorm.DB) *CodeRepositoryAdapter {
	return &CodeRepositoryAdapter{db: db, now: time.Now}
}

// Save persists a code, replacing any previous code for the same email
func (r *CodeRepositoryAdapter) Save(ctx context.Context, code *ports.CodeData) error {
	if code == nil {
		return errors.NewInvalidInputError("code cannot be nil")
	}
	if code.ID == "" || code.Email == "" {
		return errors.NewInvalidInputError("code ID and email are required")
	}

	model := r.dataToModel(code)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", model.Email).Delete(&VerificationCodeModel{}).Error; err != nil {
			return err
		}
		return tx.Create(model).Error
	})
	if err != nil {
		return errors.NewDatabaseError("failed to save code", err)
	}

	return nil
}

// FindByEmail retrieves the live code for an email, expired or not
func (r *CodeRepositoryAdapter) FindByEmail(ctx context.Context, email string) (*ports.CodeData, error) {
	if email == "" {
		return nil, errors.NewInvalidInputError("email cannot be empty")
	}

	var model VerificationCodeModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("code not found")
		}
		return nil, errors.NewDatabaseError("failed to find code", result.Error)
	}

	return r.modelToData(&model), nil
}

// ConsumeByEmail deletes the code only if it still carries codeHash; a zero
// row count means another request redeemed or replaced it
func (r *CodeRepositoryAdapter) ConsumeByEmail(ctx context.Context, email, codeHash string) error {
	if email == "" {
		return errors.NewInvalidInputError("email cannot be empty")
	}

	result := r.db.WithContext(ctx).
		Where("email = ? AND code_hash = ?", email, codeHash).
		Delete(&VerificationCodeModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to consume code", result.Error)
	}
	if result.RowsAffected != 1 {
		return errors.NewNotFoundError("code not found")
	}

	return nil
}

// RecordFailedAttempt increments attempts in place and deletes the code once
// maxAttempts is reached
func (r *CodeRepositoryAdapter) RecordFailedAttempt(ctx context.Context, email string, maxAttempts int) (int, error) {
	if email == "" {
		return 0, errors.NewInvalidInputError("email cannot be empty")
	}

	var attempts int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&VerificationCodeModel{}).
			Where("email = ?", email).
			Update("attempts", gorm.Expr("attempts + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("code not found")
		}

		var model VerificationCodeModel
		if err := tx.Select("attempts").Where("email = ?", email).First(&model).Error; err != nil {
			return err
		}
		attempts = model.Attempts

		if maxAttempts > 0 && attempts >= maxAttempts {
			return tx.Where("email = ?", email).Delete(&VerificationCodeModel{}).Error
		}
		return nil
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return 0, err
		}
		return 0, errors.NewDatabaseError("failed to record failed attempt", err)
	}

	return attempts, nil
}

// DeleteByEmail removes the code issued to an email
func (r *CodeRepositoryAdapter) DeleteByEmail(ctx context.Context, email string) error {
	if email == "" {
		return errors.NewInvalidInputError("email cannot be empty")
	}

	result := r.db.WithContext(ctx).Where("email = ?", email).Delete(&VerificationCodeModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete code", result.Error)
	}

	return nil
}

// DeleteExpired removes all expired codes from the database
func (r *CodeRepositoryAdapter) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", r.now()).Delete(&VerificationCodeModel{})
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to delete expired codes", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *CodeRepositoryAdapter) dataToModel(data *ports.CodeData) *VerificationCodeModel {
	return &VerificationCodeModel{
		ID:        data.ID,
		Email:     data.Email,
		CodeHash:  data.CodeHash,
		Attempts:  data.Attempts,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func (r *CodeRepositoryAdapter) modelToData(model *VerificationCodeModel) *ports.CodeData {
	return &ports.CodeData{
		ID:        model.ID,
		Email:     model.Email,
		CodeHash:  model.CodeHash,
		Attempts:  model.Attempts,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}
}
