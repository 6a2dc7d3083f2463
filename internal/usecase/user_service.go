package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/dto"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/provider"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/repository"
)

const sessionTokenTTL = 7 * 24 * time.Hour

// UserService implements registration, login and account management.
type UserService struct {
	users    repository.UserRepository
	verifier provider.TokenVerifier
	secret   string
	logger   *zap.Logger
}

// NewUserService creates the user service.
func NewUserService(users repository.UserRepository, verifier provider.TokenVerifier, jwtSecret string, logger *zap.Logger) *UserService {
	return &UserService{
		users:    users,
		verifier: verifier,
		secret:   jwtSecret,
		logger:   logger,
	}
}

// Register creates a password-based account and returns a session token.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := s.users.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        strings.ToLower(req.Email),
		Username:     req.Username,
		Role:         model.RoleUser,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return s.issueSession(user)
}

// Login verifies credentials and returns a session token. Wrong email and
// wrong password produce the same error so accounts cannot be enumerated.
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, apperrors.Unauthenticated("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthenticated("invalid email or password")
	}

	return s.issueSession(user)
}

// ExternalLogin verifies a token from the external identity provider and
// returns a session, creating the account on first sight.
func (s *UserService) ExternalLogin(ctx context.Context, req *dto.ExternalLoginRequest) (*dto.AuthResponse, error) {
	identity, err := s.verifier.Verify(ctx, req.Token)
	if err != nil {
		return nil, apperrors.Unauthenticated("identity token could not be verified")
	}

	user, err := s.users.GetByExternalAuthID(ctx, identity.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.createExternalUser(ctx, identity)
		if err != nil {
			return nil, err
		}
	}

	return s.issueSession(user)
}

func (s *UserService) createExternalUser(ctx context.Context, identity *provider.Identity) (*model.User, error) {
	email := strings.ToLower(identity.Email)

	// The email may already hold a password account; link it instead of
	// creating a duplicate.
	if email != "" {
		existing, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			subject := identity.Subject
			existing.ExternalAuthID = &subject
			if identity.EmailVerified {
				existing.Verified = true
			}
			if err := s.users.Update(ctx, existing); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	subject := identity.Subject
	user := &model.User{
		ExternalAuthID: &subject,
		Email:          email,
		Username:       usernameFromEmail(email),
		Role:           model.RoleUser,
		Verified:       identity.EmailVerified,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created from external identity",
		zap.String("user_id", user.ID.String()))
	return user, nil
}

// usernameFromEmail derives a probably-unique username from the email local
// part plus a short random suffix.
func usernameFromEmail(email string) string {
	local := email
	if idx := strings.Index(email, "@"); idx > 0 {
		local = email[:idx]
	}
	if local == "" {
		local = "user"
	}
	return local + "-" + uuid.NewString()[:8]
}

// GetByID returns an account by id.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}

// UpdateProfile applies self-editable fields to the account.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns a page of accounts. Admin only; enforced at the route.
func (s *UserService) List(ctx context.Context, page entity.PaginationParams) ([]*model.User, int64, error) {
	page.Validate("created_at", "email", "username", "role")
	return s.users.List(ctx, page)
}

// UpdateRole changes a user's role.
func (s *UserService) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User role updated",
		zap.String("user_id", id.String()),
		zap.String("role", role))
	return user, nil
}

func (s *UserService) issueSession(user *model.User) (*dto.AuthResponse, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &dto.AuthResponse{Token: signed, User: user}, nil
}
