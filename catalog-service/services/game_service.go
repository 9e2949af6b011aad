package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gamestore-backend/shared/database/models"
	"gamestore-backend/shared/utils/apperrors"
	"gamestore-backend/shared/utils/diff"
	"gamestore-backend/shared/utils/identifier"
	"gamestore-backend/shared/utils/money"
	"gamestore-backend/shared/utils/query"
)

// GameService owns the game lifecycle: identifier and price encoding,
// change-set diffing on update, and paginated listing. Persistence is
// delegated to the injected GORM handle.
type GameService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGameService creates a game service bound to the given database
func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db, now: time.Now}
}

// CreateGameParams holds the inbound fields for game creation. Price
// is a decimal string ("59.90") and is stored as minor units.
type CreateGameParams struct {
	Name        string
	Description string
	Price       string
	ImageURLs   []string
}

// UpdateGameParams holds a partial update. Nil means "field omitted,
// leave it alone"; Images replaces the whole owned image list.
type UpdateGameParams struct {
	Name        *string
	Description *string
	Price       *string
	Images      *[]string
}

// GameImageRecord is the externally visible form of an owned image
type GameImageRecord struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// GameRecord is the externally visible form of a game: encoded
// identifier and display price.
type GameRecord struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       string            `json:"price"`
	Images      []GameImageRecord `json:"images"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Create validates the required fields, assigns a fresh identifier and
// persists the game together with its owned image rows.
func (s *GameService) Create(ctx context.Context, params CreateGameParams) (*GameRecord, error) {
	var invalid []string
	if params.Name == "" {
		invalid = append(invalid, "name")
	}

	cents, err := money.ToMinorUnits(params.Price)
	if err != nil {
		invalid = append(invalid, "price")
	}

	if len(invalid) > 0 {
		return nil, apperrors.NewValidationError(invalid...)
	}

	game := models.Game{
		ID:          identifier.New(),
		Name:        params.Name,
		Description: params.Description,
		Price:       cents,
	}
	for i, url := range params.ImageURLs {
		game.Images = append(game.Images, models.GameImage{
			ID:       identifier.New(),
			GameID:   game.ID,
			URL:      url,
			Position: i,
		})
	}

	if err := s.db.WithContext(ctx).Create(&game).Error; err != nil {
		return nil, err
	}

	return encodeGame(&game)
}

// Get returns a single game by its canonical identifier
func (s *GameService) Get(ctx context.Context, id string) (*GameRecord, error) {
	idBytes, err := identifier.Decode(id)
	if err != nil {
		return nil, err
	}

	var game models.Game
	err = s.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&game, "id = ?", idBytes).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return encodeGame(&game)
}

// List returns one page of games plus the total page count. The count
// and the bounded fetch run inside one transaction so the page and
// totalPages come from the same snapshot; with concurrent writers this
// is best-effort, not a hard guarantee. Ordering is created_at
// ascending with the identifier as tiebreak.
func (s *GameService) List(ctx context.Context, params query.ListParams) ([]GameRecord, int64, error) {
	var games []models.Game
	var total int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counted := query.ApplyPriceRange(tx.Model(&models.Game{}), params)
		if err := counted.Count(&total).Error; err != nil {
			return err
		}

		fetched := query.ApplyPriceRange(tx.Model(&models.Game{}), params).
			Preload("Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			Order("created_at ASC").
			Order("id ASC")
		return query.ApplyPagination(fetched, params.Page, params.Limit).
			Find(&games).Error
	})
	if err != nil {
		return nil, 0, err
	}

	records := make([]GameRecord, 0, len(games))
	for i := range games {
		record, err := encodeGame(&games[i])
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *record)
	}

	return records, query.TotalPages(total, params.Limit), nil
}

// Patch applies a partial update. Only fields that are present AND
// different from the stored value are written; an empty change-set
// issues no write at all, leaving updated_at untouched. A supplied
// image list that differs from the current one replaces the whole
// owned collection.
func (s *GameService) Patch(ctx context.Context, id string, params UpdateGameParams) error {
	idBytes, err := identifier.Decode(id)
	if err != nil {
		return err
	}

	var game models.Game
	err = s.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&game, "id = ?", idBytes).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	current := map[string]interface{}{
		"name":        game.Name,
		"description": game.Description,
		"price":       game.Price,
	}

	requested := map[string]interface{}{}
	if params.Name != nil {
		requested["name"] = *params.Name
	}
	if params.Description != nil {
		requested["description"] = *params.Description
	}
	if params.Price != nil {
		cents, err := money.ToMinorUnits(*params.Price)
		if err != nil {
			return apperrors.NewValidationError("price")
		}
		requested["price"] = cents
	}

	changes := diff.Changed(current, requested)

	imagesChanged := false
	var newImages []models.GameImage
	if params.Images != nil {
		if imagesChanged = !sameImageURLs(game.Images, *params.Images); imagesChanged {
			for i, url := range *params.Images {
				newImages = append(newImages, models.GameImage{
					ID:       identifier.New(),
					GameID:   game.ID,
					URL:      url,
					Position: i,
				})
			}
		}
	}

	if len(changes) == 0 && !imagesChanged {
		return nil
	}

	changes["updated_at"] = s.now().UTC()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if imagesChanged {
			if err := tx.Where("game_id = ?", game.ID).Delete(&models.GameImage{}).Error; err != nil {
				return err
			}
			if len(newImages) > 0 {
				if err := tx.Create(&newImages).Error; err != nil {
					return err
				}
			}
		}
		return tx.Model(&models.Game{}).Where("id = ?", game.ID).Updates(changes).Error
	})
}

// Delete removes a game and, in the same transaction, every owned
// image row. No orphaned child rows survive.
func (s *GameService) Delete(ctx context.Context, id string) error {
	idBytes, err := identifier.Decode(id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, "id = ?", idBytes).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}

		if err := tx.Where("game_id = ?", idBytes).Delete(&models.GameImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Game{}, "id = ?", idBytes).Error
	})
}

// sameImageURLs compares the desired URL sequence against the stored
// image rows, order included.
func sameImageURLs(current []models.GameImage, requested []string) bool {
	if len(current) != len(requested) {
		return false
	}
	for i := range current {
		if current[i].URL != requested[i] {
			return false
		}
	}
	return true
}

// encodeGame maps a stored game to its external form
func encodeGame(game *models.Game) (*GameRecord, error) {
	id, err := identifier.Encode(game.ID)
	if err != nil {
		return nil, err
	}

	record := &GameRecord{
		ID:          id,
		Name:        game.Name,
		Description: game.Description,
		Price:       money.ToDisplay(game.Price),
		Images:      make([]GameImageRecord, 0, len(game.Images)),
		CreatedAt:   game.CreatedAt,
		UpdatedAt:   game.UpdatedAt,
	}

	for _, image := range game.Images {
		imageID, err := identifier.Encode(image.ID)
		if err != nil {
			return nil, err
		}
		record.Images = append(record.Images, GameImageRecord{ID: imageID, URL: image.URL})
	}

	return record, nil
}
