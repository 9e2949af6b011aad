package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore-backend/shared/database/models"
	"gamestore-backend/shared/utils/apperrors"
	utils "gamestore-backend/shared/utils/auth"
	"gamestore-backend/shared/utils/identifier"
	"gamestore-backend/shared/utils/query"
)

func createUser(t *testing.T, svc *UserService, name, email string) *UserRecord {
	t.Helper()

	record, err := svc.Create(context.Background(), CreateUserParams{
		Name:     name,
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return record
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	record := createUser(t, svc, "Alice", "alice@example.com")

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "Alice", record.Name)
	assert.Equal(t, "alice@example.com", record.Email)

	idBytes, err := identifier.Decode(record.ID)
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", idBytes).Error)

	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.Password))
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	tests := []struct {
		name       string
		params     CreateUserParams
		wantFields []string
	}{
		{
			name:       "missing name",
			params:     CreateUserParams{Email: "a@b.com", Password: "secret123"},
			wantFields: []string{"name"},
		},
		{
			name:       "bad email",
			params:     CreateUserParams{Name: "Alice", Email: "not-an-email", Password: "secret123"},
			wantFields: []string{"email"},
		},
		{
			name:       "short password",
			params:     CreateUserParams{Name: "Alice", Email: "a@b.com", Password: "123"},
			wantFields: []string{"password"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.params)
			require.Error(t, err)

			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	createUser(t, svc, "Alice", "alice@example.com")

	_, err := svc.Create(context.Background(), CreateUserParams{
		Name:     "Alice Again",
		Email:    "alice@example.com",
		Password: "different123",
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUserService_Get(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	created := createUser(t, svc, "Alice", "alice@example.com")

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Alice", got.Name)
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	missing, err := identifier.Encode(identifier.New())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), missing)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_List(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	createUser(t, svc, "Alice", "alice@example.com")
	createUser(t, svc, "Bob", "bob@example.com")
	createUser(t, svc, "Carol", "carol@example.com")

	records, totalPages, err := svc.List(context.Background(), query.ListParams{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(2), totalPages)
	assert.Len(t, records, 2)
}

func TestUserService_Patch_NameOnly(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	created := createUser(t, svc, "Alice", "alice@example.com")

	err := svc.Patch(context.Background(), created.ID, UpdateUserParams{Name: strPtr("Alicia")})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestUserService_Patch_UnchangedNameWritesNothing(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	created := createUser(t, svc, "Alice", "alice@example.com")

	before, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Patch(context.Background(), created.ID, UpdateUserParams{Name: strPtr("Alice")}))

	after, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, before.UpdatedAt.Equal(after.UpdatedAt), "no-op patch must not touch updated_at")
}

func TestUserService_Delete(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	created := createUser(t, svc, "Alice", "alice@example.com")

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err := svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	missing, err := identifier.Encode(identifier.New())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(context.Background(), missing), apperrors.ErrNotFound)
}
