// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/store"
	"github.com/Tarekazabou/health-app/internal/validators"
	"github.com/Tarekazabou/health-app/models"
)

type userService struct {
	userRepository    store.UserRepository
	profileRepository store.ProfileRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewUserService(users store.UserRepository, profiles store.ProfileRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository:    users,
		profileRepository: profiles,
		validator:         validator,
		logger:            logger,
	}
}

// GetProfile returns the stored profile, or the default goals when the user
// has none yet.
func (s *userService) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	profile, err := s.profileRepository.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return models.DefaultProfile(userID), nil
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetProfile").Msg("profile read failed")
		return models.UserProfile{}, internalError("Failed to fetch profile", err)
	}

	return profile, nil
}

// UpdateProfile merges the provided attributes into the profile. An update
// without any attribute is rejected before the store is touched.
func (s *userService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error {
	if err := s.validator.Validate(ctx, update); err != nil {
		return validationError(err)
	}

	if err := s.profileRepository.UpsertProfile(ctx, userID, update); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateProfile").Msg("profile update failed")
		return internalError("Failed to update profile", err)
	}
	return nil
}

func (s *userService) GetUserInfo(ctx context.Context, userID string) (models.UserInfo, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.UserInfo{}, newError(ErrNotFound, app.MsgUserNotFound, err)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetUserInfo").Msg("user read failed")
		return models.UserInfo{}, internalError("Failed to fetch user info", err)
	}

	return user.Info(), nil
}
