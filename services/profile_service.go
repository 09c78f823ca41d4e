package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"gorm.io/gorm"
)

const profileLookupTimeout = 3 * time.Second

// ProfileStore is the identity/profile collaborator consumed by the session
// listing. The default implementation reads the users table; tests swap in
// fakes.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error
}

var Profiles ProfileStore = dbProfileStore{}

type dbProfileStore struct{}

func (dbProfileStore) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, profileLookupTimeout)
	defer cancel()

	var user models.User
	err := database.DB.WithContext(ctx).First(&user, "id = ?", userID).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return nil, fmt.Errorf("%w: profile lookup timed out", ErrUnavailable)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

func (dbProfileStore) UpdateProfile(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, profileLookupTimeout)
	defer cancel()

	res := database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, context.DeadlineExceeded) || errors.Is(res.Error, context.Canceled) {
			return fmt.Errorf("%w: profile update timed out", ErrUnavailable)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	return nil
}
