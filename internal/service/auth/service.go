package auth

import (
	"context"
	"fmt"

	"github.com/brickmart/console-backend-go/internal/domain/auth"
	"github.com/brickmart/console-backend-go/internal/domain/user"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/brickmart/console-backend-go/internal/pkg/jwt"
	"github.com/brickmart/console-backend-go/internal/pkg/oauth"
	"github.com/brickmart/console-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db       *database.DB
	userRepo user.UserRepository
	jwtSvc   jwt.Service
	jwtRepo  postgresql.JWTRepository
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, jwtSvc jwt.Service, jwtRepo postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:       db,
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		jwtRepo:  jwtRepo,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, session)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, info oauth.GoogleInformation, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	if !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	userData, err := a.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.LoginResponse{}, auth.ErrOAuthEmailUnknown
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return a.issueTokens(ctx, userData, session)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	userID, err := a.verifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to get user for refresh: %w", err)
	}

	var resp auth.LoginResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Rotate: revoke the used token before issuing the next pair
		if err := a.jwtRepo.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		resp, err = a.issueTokens(txCtx, userData, session)
		return err
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return resp, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := a.verifyRefreshToken(ctx, refreshToken); err != nil {
		return err
	}
	return a.jwtRepo.RevokeRefreshToken(ctx, refreshToken)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	var pair auth.TokenPair
	var err error

	pair.AccessToken, pair.AccessExpiresAt, err = a.jwtSvc.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	pair.RefreshToken, pair.RefreshExpiresAt, err = a.jwtSvc.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := a.jwtRepo.CreateRefreshToken(ctx, userData.ID, pair.RefreshToken, pair.RefreshExpiresAt, session); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return auth.LoginResponse{
		TokenPair: pair,
		UserID:    userData.ID,
		Email:     userData.Email,
		FullName:  userData.FullName,
		Role:      string(userData.Role),
	}, nil
}

func (a *AuthServiceImpl) verifyRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	token, err := a.jwtSvc.JWTAuth().Decode(refreshToken)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", auth.ErrInvalidToken
	}

	revoked, err := a.jwtRepo.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return "", auth.ErrRefreshTokenRevoked
	}

	return userID, nil
}
