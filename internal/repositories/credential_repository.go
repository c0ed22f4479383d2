package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type CredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (*db_models.Credential, error)
}

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) FindByUsername(ctx context.Context, username string) (*db_models.Credential, error) {
	var cred db_models.Credential
	err := r.db.WithContext(ctx).First(&cred, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cred, nil
}
