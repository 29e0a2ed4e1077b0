package identity

import (
	"context"
	"errors"
	"time"

	"github.com/tenantbill/backend/internal/domain/identity"
	"github.com/tenantbill/backend/internal/domain/shared"
	"github.com/tenantbill/backend/internal/infrastructure/auth"
	"github.com/tenantbill/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password alike
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")

// AuthService handles login, logout and operator accounts
type AuthService struct {
	userRepo       identity.UserRepository
	jwtService     *auth.JWTService
	blacklist      auth.TokenBlacklist
	billingMetrics *telemetry.BillingMetrics
	now            func() time.Time
	verifyMissing  func(password string) bool // hashes against a placeholder for unknown users
	logger         *zap.Logger
}

// NewAuthService creates a new authentication service.
// blacklist may be nil, in which case logout only logs.
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtService:    jwtService,
		blacklist:     blacklist,
		now:           time.Now,
		verifyMissing: identity.VerifyPlaceholderPassword,
		logger:        logger,
	}
}

// SetBillingMetrics enables login outcome counters
func (s *AuthService) SetBillingMetrics(m *telemetry.BillingMetrics) {
	s.billingMetrics = m
}

// Login verifies credentials and issues a bearer token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if !shared.IsNotFound(err) {
			return nil, err
		}
		s.verifyMissing(input.Password)
		s.logger.Warn("Login for unknown user",
			zap.String("username", input.Username),
			zap.String("ip", input.IP))
		s.billingMetrics.Login(ctx, "failure")
		return nil, ErrInvalidCredentials
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt",
			zap.String("username", input.Username),
			zap.String("ip", input.IP))
		s.billingMetrics.Login(ctx, "failure")
		return nil, ErrInvalidCredentials
	}

	issued, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	s.billingMetrics.Login(ctx, "success")
	s.logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.Int64("user_id", user.ID))

	return &LoginResult{Token: issued.Token, ExpiresAt: issued.ExpiresAt}, nil
}

// Logout revokes the presented token until it would have expired
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if s.blacklist == nil || input.TokenJTI == "" {
		s.logger.Info("User logout without revocation", zap.Int64("user_id", input.UserID))
		return nil
	}

	ttl := input.ExpiresAt.Sub(s.now())
	if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, ttl); err != nil {
		return err
	}

	s.logger.Info("User logged out",
		zap.Int64("user_id", input.UserID),
		zap.Duration("revoked_for", ttl))
	return nil
}

// CreateUser stores a new operator account
func (s *AuthService) CreateUser(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	user, err := identity.NewUser(input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created", zap.String("username", user.Username), zap.Int64("user_id", user.ID))
	return toUserDTO(user), nil
}

// EnsureBootstrapUser creates the configured operator account if it is
// missing. An empty username or password disables bootstrapping. It reports
// whether a user was created.
func (s *AuthService) EnsureBootstrapUser(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	_, err := s.CreateUser(ctx, CreateUserInput{Username: username, Password: password})
	if errors.Is(err, shared.ErrAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ChangePassword replaces a user's password
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info("Password changed", zap.Int64("user_id", userID))
	return nil
}

// ResetPassword replaces the password of the user with the given username
func (s *AuthService) ResetPassword(ctx context.Context, username, newPassword string) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.ChangePassword(ctx, user.ID, newPassword)
}

func toUserDTO(user *identity.User) *UserDTO {
	return &UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
