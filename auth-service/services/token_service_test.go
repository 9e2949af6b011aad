package services

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gamestore-backend/shared/database/models"
	"gamestore-backend/shared/utils/apperrors"
	utils "gamestore-backend/shared/utils/auth"
	"gamestore-backend/shared/utils/identifier"
)

// fakeBlacklist is an in-memory BlacklistStore honoring TTLs against
// an injected clock.
type fakeBlacklist struct {
	entries map[string]time.Time
	now     func() time.Time
}

func newFakeBlacklist(now func() time.Time) *fakeBlacklist {
	return &fakeBlacklist{entries: make(map[string]time.Time), now: now}
}

func (f *fakeBlacklist) Add(_ context.Context, token string, ttl time.Duration) error {
	f.entries[token] = f.now().Add(ttl)
	return nil
}

func (f *fakeBlacklist) Contains(_ context.Context, token string) (bool, error) {
	expiry, ok := f.entries[token]
	if !ok {
		return false, nil
	}
	if f.now().After(expiry) {
		delete(f.entries, token)
		return false, nil
	}
	return true, nil
}

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()

	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		ID:       identifier.New(),
		Name:     "Test User",
		Email:    email,
		Password: hashed,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestTokenService_SignIn_IssuesValidToken(t *testing.T) {
	db := newAuthTestDB(t)
	user := seedUser(t, db, "alice@example.com", "secret123")

	issuedAt := time.Now()
	svc := NewTokenService(db, newFakeBlacklist(time.Now))
	svc.now = func() time.Time { return issuedAt }

	token, expiresAt, err := svc.SignIn(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, issuedAt.Add(utils.GetJWTExpireDuration()), expiresAt, time.Second)

	claims, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)

	wantSubject, err := identifier.Encode(user.ID)
	require.NoError(t, err)
	assert.Equal(t, wantSubject, claims.Subject)
	assert.Equal(t, "Test User", claims.UserName)
}

func TestTokenService_SignIn_WrongPassword(t *testing.T) {
	db := newAuthTestDB(t)
	seedUser(t, db, "alice@example.com", "secret123")

	svc := NewTokenService(db, newFakeBlacklist(time.Now))

	_, _, err := svc.SignIn(context.Background(), "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_SignIn_UnknownEmail(t *testing.T) {
	db := newAuthTestDB(t)

	svc := NewTokenService(db, newFakeBlacklist(time.Now))

	_, _, err := svc.SignIn(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_SignOut_RevokesToken(t *testing.T) {
	db := newAuthTestDB(t)
	seedUser(t, db, "alice@example.com", "secret123")

	blacklist := newFakeBlacklist(time.Now)
	svc := NewTokenService(db, blacklist)

	token, _, err := svc.SignIn(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(context.Background(), token))

	_, err = svc.Authenticate(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	// a revoked token is still an unauthorized one
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_SignOut_Idempotent(t *testing.T) {
	db := newAuthTestDB(t)
	seedUser(t, db, "alice@example.com", "secret123")

	svc := NewTokenService(db, newFakeBlacklist(time.Now))

	token, _, err := svc.SignIn(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(context.Background(), token))
	require.NoError(t, svc.SignOut(context.Background(), token))
}

func TestTokenService_SignOut_ExpiredTokenSkipsBlacklist(t *testing.T) {
	db := newAuthTestDB(t)
	seedUser(t, db, "alice@example.com", "secret123")

	blacklist := newFakeBlacklist(time.Now)
	svc := NewTokenService(db, blacklist)

	// sign in well in the past so the token is already expired
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, _, err := svc.SignIn(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	svc.now = time.Now
	require.NoError(t, svc.SignOut(context.Background(), token))
	assert.Empty(t, blacklist.entries, "expired token must not be stored")
}

func TestTokenService_SignOut_GarbageToken(t *testing.T) {
	db := newAuthTestDB(t)
	svc := NewTokenService(db, newFakeBlacklist(time.Now))

	err := svc.SignOut(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_Authenticate_RejectsExpiredToken(t *testing.T) {
	db := newAuthTestDB(t)
	seedUser(t, db, "alice@example.com", "secret123")

	svc := NewTokenService(db, newFakeBlacklist(time.Now))
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, _, err := svc.SignIn(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_Authenticate_RejectsTamperedToken(t *testing.T) {
	db := newAuthTestDB(t)
	seedUser(t, db, "alice@example.com", "secret123")

	svc := NewTokenService(db, newFakeBlacklist(time.Now))

	token, _, err := svc.SignIn(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Authenticate(context.Background(), tampered)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
