package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gamestore-backend/shared/database/models"
	"gamestore-backend/shared/utils/apperrors"
	utils "gamestore-backend/shared/utils/auth"
	"gamestore-backend/shared/utils/diff"
	"gamestore-backend/shared/utils/identifier"
	"gamestore-backend/shared/utils/query"
)

// UserService owns the user lifecycle. Passwords are stored only as a
// bcrypt digest; name is the single mutable field after creation.
type UserService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserService creates a user service bound to the given database
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db, now: time.Now}
}

// CreateUserParams holds the inbound fields for user creation
type CreateUserParams struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserParams holds a partial user update; only name is mutable
type UpdateUserParams struct {
	Name *string
}

// UserRecord is the externally visible form of a user; the password
// digest never leaves the service.
type UserRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Create validates the fields, hashes the password and persists the
// user. A duplicate email fails with ErrConflict.
func (s *UserService) Create(ctx context.Context, params CreateUserParams) (*UserRecord, error) {
	var invalid []string
	if params.Name == "" {
		invalid = append(invalid, "name")
	}
	if utils.ValidateEmail(params.Email) != nil {
		invalid = append(invalid, "email")
	}
	if utils.ValidatePassword(params.Password) != nil {
		invalid = append(invalid, "password")
	}
	if len(invalid) > 0 {
		return nil, apperrors.NewValidationError(invalid...)
	}

	// Check email uniqueness
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", params.Email).First(&existing).Error; err == nil {
		return nil, apperrors.ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       identifier.New(),
		Name:     params.Name,
		Email:    params.Email,
		Password: hashed,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	return encodeUser(&user)
}

// Get returns a single user by its canonical identifier
func (s *UserService) Get(ctx context.Context, id string) (*UserRecord, error) {
	idBytes, err := identifier.Decode(id)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", idBytes).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return encodeUser(&user)
}

// List returns one page of users plus the total page count, with the
// same single-transaction count+fetch as the game listing.
func (s *UserService) List(ctx context.Context, params query.ListParams) ([]UserRecord, int64, error) {
	var users []models.User
	var total int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Count(&total).Error; err != nil {
			return err
		}

		fetched := tx.Model(&models.User{}).
			Order("created_at ASC").
			Order("id ASC")
		return query.ApplyPagination(fetched, params.Page, params.Limit).
			Find(&users).Error
	})
	if err != nil {
		return nil, 0, err
	}

	records := make([]UserRecord, 0, len(users))
	for i := range users {
		record, err := encodeUser(&users[i])
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *record)
	}

	return records, query.TotalPages(total, params.Limit), nil
}

// Patch applies a partial update; an unchanged or omitted name issues
// no write at all.
func (s *UserService) Patch(ctx context.Context, id string, params UpdateUserParams) error {
	idBytes, err := identifier.Decode(id)
	if err != nil {
		return err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", idBytes).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	current := map[string]interface{}{
		"name": user.Name,
	}

	requested := map[string]interface{}{}
	if params.Name != nil {
		requested["name"] = *params.Name
	}

	changes := diff.Changed(current, requested)
	if len(changes) == 0 {
		return nil
	}

	changes["updated_at"] = s.now().UTC()

	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(changes).Error
}

// Delete removes a user permanently; there is no soft-delete
func (s *UserService) Delete(ctx context.Context, id string) error {
	idBytes, err := identifier.Decode(id)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", idBytes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// encodeUser maps a stored user to its external form
func encodeUser(user *models.User) (*UserRecord, error) {
	id, err := identifier.Encode(user.ID)
	if err != nil {
		return nil, err
	}

	return &UserRecord{
		ID:        id,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}
