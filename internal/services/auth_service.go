package services

import (
	"context"
	"fmt"
	"time"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
	"github.com/itsfarrukhali/bathfitter-backend/internal/utils"
)

const (
	AccessTokenDuration  = 15 * time.Minute
	RefreshTokenDuration = 30 * 24 * time.Hour
)

type AuthService struct {
	userRepo UserStore
	sessions SessionStore
}

func NewAuthService(userRepo UserStore, sessions SessionStore) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

func (s *AuthService) Register(ctx context.Context, user *models.User) (*TokenPair, error) {
	// 1. Check if user already exists
	existing, _ := s.userRepo.FindUserByEmail(user.Email)
	if existing != nil {
		return nil, fmt.Errorf("%w: user already exists", ErrConflict)
	}

	// 2. Hash password before saving
	hashedPassword, err := utils.Hash(user.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = "" // Clear plain password

	// 3. Policy: first user becomes admin
	userCount, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, err
	}
	if userCount == 0 {
		user.Role = "admin"
	}

	// 4. Save user in DB
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, fmt.Errorf("%w: invalid password", ErrValidation)
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Refresh validates the refresh token from the cookie, rotates the session
// and issues a new pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := utils.VerifyJWT(refreshToken, utils.RefreshTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid or expired refresh token", ErrValidation)
	}

	blacklisted, err := s.sessions.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, fmt.Errorf("%w: refresh token revoked", ErrValidation)
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed token subject", ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	// Token rotation: old JTI goes on the blacklist before new tokens exist.
	if err := s.sessions.Blacklist(ctx, claims.ID); err != nil {
		return nil, err
	}
	if err := s.sessions.DeleteSession(ctx, claims.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := utils.VerifyJWT(refreshToken, utils.RefreshTokenSecret)
	if err != nil {
		// An unparseable token has nothing to revoke.
		return nil
	}

	if err := s.sessions.Blacklist(ctx, claims.ID); err != nil {
		return err
	}
	return s.sessions.DeleteSession(ctx, claims.ID)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	accessToken, _, err := utils.GenerateJWT(user.ID, AccessTokenDuration, utils.AccessTokenSecret)
	if err != nil {
		return nil, err
	}

	refreshToken, jti, err := utils.GenerateJWT(user.ID, RefreshTokenDuration, utils.RefreshTokenSecret)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.StoreSession(ctx, jti, user.ID.String()); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
