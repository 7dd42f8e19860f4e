package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// uow scopes registration to one transaction.
	uow store.UnitOfWork

	// hashCost is the bcrypt work factor used for new password hashes.
	hashCost int

	// jwtParams holds the sign key, algorithm and issuer of access tokens.
	jwtParams utils.JWTParams

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, uow store.UnitOfWork, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uow:            uow,
		hashCost:       cfg.PasswordHashCost,
		jwtParams: utils.JWTParams{
			SignKey:   cfg.TokenSignKey,
			Algorithm: cfg.TokenAlgorithm,
			Issuer:    cfg.TokenIssuer,
		},
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is looked up before the insert. The unique index on users.email
// still decides concurrent registrations, and its violation is reported as
// ErrDuplicateIdentity as well.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrDuplicateIdentity if the email is already registered.
//   - ErrStorage wrapping any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(request.Password, a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var registeredUser models.User
	err = a.uow.WithinTx(ctx, func(ctx context.Context) error {
		_, err := a.userRepository.FindUserByEmail(ctx, request.Email)
		switch {
		case err == nil:
			return store.ErrEmailAlreadyExists
		case !errors.Is(err, store.ErrNoUserWasFound):
			return err
		}

		registeredUser, err = a.userRepository.CreateUser(ctx, models.User{
			Email:        request.Email,
			PasswordHash: passwordHash,
			FullName:     request.FullName,
			IsActive:     true,
		})
		return err
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Warn().Str("email", request.Email).Msg("registration attempt with existing email")
		return models.User{}, fmt.Errorf("%w: %s", ErrDuplicateIdentity, request.Email)
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: user creation ended with error: %w", ErrStorage, err)
	}

	log.Info().Int64("user_id", registeredUser.ID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// that callers cannot probe which emails are registered. A disabled account
// with the right password yields ErrUserIsDisabled.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", request.Email).Msg("failed login attempt")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("%w: user search by email failed: %w", ErrStorage, err)
	}

	if !utils.CheckPassword(request.Password, foundUser.PasswordHash) {
		log.Warn().Str("email", request.Email).Msg("failed login attempt")
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Warn().Int64("user_id", foundUser.ID).Msg("login attempt of disabled user")
		return models.User{}, ErrUserIsDisabled
	}

	log.Info().Int64("user_id", foundUser.ID).Msg("user logged in")
	return foundUser, nil
}

// Identify reads the token's user afresh, so a user deleted or disabled
// after the token was issued is rejected.
func (a *authService) Identify(ctx context.Context, token models.Token) (models.User, error) {
	log := logger.FromContext(ctx)

	email := token.Email()
	if email == "" {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", email).Msg("token subject does not exist")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("%w: user search by email failed: %w", ErrStorage, err)
	}

	if !user.IsActive {
		return models.User{}, ErrUserIsDisabled
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.jwtParams, user, a.tokenDuration)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.jwtParams)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
