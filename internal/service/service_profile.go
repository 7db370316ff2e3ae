package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// maxBioLength bounds the profile bio field.
const maxBioLength = 250

// profileService is the concrete implementation of ProfileService. It reads
// and mutates account profiles; credentials never pass through it.
type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetProfile returns the safe projection of the user's account.
func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the provided fields of update to the user's account.
// Nil fields keep their stored values; a field set to a pointer counts as
// provided even when it points at an empty string.
//
// Returns the updated user record or:
//   - ErrInvalidEmail if a new e-mail is provided and is malformed.
//   - ErrBioTooLong if a new bio exceeds maxBioLength characters.
//   - ErrInvalidDataProvided if a provided name is empty.
//   - A wrapped storage error when persistence fails (ErrNoUserWasFound,
//     ErrUserAlreadyExists on a name/e-mail collision).
func (p *profileService) UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Name != nil && *update.Name == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if update.Email != nil {
		normalized := NormalizeEmail(*update.Email)
		if !emailPattern.MatchString(normalized) {
			return models.User{}, ErrInvalidEmail
		}
		update.Email = &normalized
	}
	if update.Bio != nil && utf8.RuneCountInString(*update.Bio) > maxBioLength {
		return models.User{}, ErrBioTooLong
	}

	updatedUser, err := p.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("user_id", update.UserID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}
