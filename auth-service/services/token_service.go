package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gamestore-backend/shared/database/models"
	"gamestore-backend/shared/utils/apperrors"
	utils "gamestore-backend/shared/utils/auth"
	"gamestore-backend/shared/utils/cache"
	"gamestore-backend/shared/utils/identifier"
)

// TokenService owns the access token lifecycle: issuance at sign-in,
// revocation-before-expiry through the blacklist at sign-out, and
// verification on every authenticated request. The clock is injected
// so the TTL math is testable.
type TokenService struct {
	db        *gorm.DB
	blacklist cache.BlacklistStore
	now       func() time.Time
}

// NewTokenService creates a token service bound to the given database
// and blacklist store
func NewTokenService(db *gorm.DB, blacklist cache.BlacklistStore) *TokenService {
	return &TokenService{db: db, blacklist: blacklist, now: time.Now}
}

// SignIn verifies the credentials and issues a signed, time-limited
// token. A missing user and a wrong password are indistinguishable to
// the caller: both fail with ErrUnauthorized.
func (s *TokenService) SignIn(ctx context.Context, email, password string) (string, time.Time, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", time.Time{}, apperrors.ErrUnauthorized
		}
		return "", time.Time{}, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	userID, err := identifier.Encode(user.ID)
	if err != nil {
		return "", time.Time{}, err
	}

	issuedAt := s.now()
	token, err := utils.GenerateJWT(userID, user.Name, issuedAt)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, issuedAt.Add(utils.GetJWTExpireDuration()), nil
}

// SignOut blacklists the token for exactly its remaining lifetime.
// Claims are read without signature verification: only the expiry
// matters here, and a forged token is rejected by Authenticate anyway.
// Signing out twice is harmless.
func (s *TokenService) SignOut(ctx context.Context, token string) error {
	claims, err := utils.DecodeJWTUnverified(token)
	if err != nil {
		return apperrors.ErrUnauthorized
	}

	if claims.ExpiresAt == nil {
		return nil
	}

	remaining := claims.ExpiresAt.Time.Sub(s.now())
	if remaining <= 0 {
		// Already expired, nothing to revoke
		return nil
	}

	return s.blacklist.Add(ctx, token, remaining)
}

// Authenticate verifies signature and expiry, consults the blacklist
// and returns the decoded claims for downstream use.
func (s *TokenService) Authenticate(ctx context.Context, token string) (*utils.Claims, error) {
	claims, err := utils.ValidateJWT(token)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	revoked, err := s.blacklist.Contains(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}

	return claims, nil
}
