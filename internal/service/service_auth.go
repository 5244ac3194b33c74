// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/config"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/store"
	"github.com/Tarekazabou/health-app/internal/utils"
	"github.com/Tarekazabou/health-app/internal/validators"
	"github.com/Tarekazabou/health-app/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle using the user and profile repositories for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// profileRepository receives the default goals of every new account.
	profileRepository store.ProfileRepository

	validator validators.Validator

	// tokenSettings controls how access tokens are signed and verified.
	tokenSettings utils.TokenSettings

	// passwordHashCost is the bcrypt cost used at signup.
	passwordHashCost int

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, profiles store.ProfileRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    users,
		profileRepository: profiles,
		validator:         validator,
		tokenSettings: utils.TokenSettings{
			Algorithm: cfg.TokenAlgorithm,
			SignKey:   cfg.SecretKey,
			Duration:  cfg.TokenDuration(),
			Issuer:    cfg.TokenIssuer,
		},
		passwordHashCost: cfg.PasswordHashCost,
		now:              time.Now,
		logger:           logger,
	}
}

// Signup creates a new account and returns an access token for it.
//
// The email format and password strength are checked before the store is
// touched. The new account gets the default daily goals as its profile.
//
// Errors:
//   - [ErrValidation] with the first violated rule;
//   - [ErrConflict] "Email already registered";
//   - [ErrInternal] "Signup failed: ..." for store and token failures.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Signup").Msg("invalid signup request")
		return models.TokenResponse{}, validationError(err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.TokenResponse{}, newError(ErrConflict, app.MsgEmailAlreadyRegistered, nil)
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.Signup").Msg("user search by email failed")
		return models.TokenResponse{}, internalError("Signup failed", err)
	}

	passwordHash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return models.TokenResponse{}, internalError("Signup failed", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateDocument) {
			return models.TokenResponse{}, newError(ErrConflict, app.MsgEmailAlreadyRegistered, err)
		}
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return models.TokenResponse{}, internalError("Signup failed", err)
	}

	if err = a.profileRepository.UpsertProfile(ctx, user.ID, models.DefaultGoals()); err != nil {
		log.Err(err).Str("func", "*authService.Signup").Str("user_id", user.ID).Msg("default profile creation failed")
		return models.TokenResponse{}, internalError("Signup failed", err)
	}

	identity := user.Identity()
	token, err := a.CreateToken(ctx, identity)
	if err != nil {
		return models.TokenResponse{}, internalError("Signup failed", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user signed up")
	return models.NewTokenResponse(token, identity), nil
}

// Login authenticates an existing account and returns a fresh access token.
//
// An unknown email and a wrong password produce the same [ErrUnauthorized]
// error so that callers cannot discover registered addresses. A successful
// login stamps last_login.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenResponse{}, newError(ErrUnauthorized, app.MsgInvalidEmailOrPassword, nil)
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.TokenResponse{}, internalError("Login failed", err)
	}

	if !utils.VerifyPassword(req.Password, user.PasswordHash) {
		log.Debug().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.TokenResponse{}, newError(ErrUnauthorized, app.MsgInvalidEmailOrPassword, nil)
	}

	if err = a.userRepository.UpdateLastLogin(ctx, user.ID); err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("last login update failed")
		return models.TokenResponse{}, internalError("Login failed", err)
	}

	identity := user.Identity()
	token, err := a.CreateToken(ctx, identity)
	if err != nil {
		return models.TokenResponse{}, internalError("Login failed", err)
	}

	return models.NewTokenResponse(token, identity), nil
}

// CreateToken issues a signed JWT for the given identity.
//
// The token is signed with the configured secret and algorithm, carries the
// configured issuer (if any) and expires after the configured lifetime.
func (a *authService) CreateToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenSettings, identity, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("token creation failed")
		return models.Token{}, errors.Join(ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and returns the identity it carries.
//
// Any validation failure (expired, wrong signature or algorithm, wrong
// issuer, malformed) is normalised to [ErrUnauthorized] wrapping
// [ErrTokenIsExpiredOrInvalid].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSettings)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Identity{}, newError(ErrUnauthorized, app.MsgInvalidCredentials, errors.Join(ErrTokenIsExpiredOrInvalid, err))
	}

	return token.Claims.Identity(), nil
}
