package query

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gamestore-backend/shared/config"
	"gamestore-backend/shared/utils/money"
)

// ListParams represents pagination and filtering parameters
type ListParams struct {
	Page     int
	Limit    int
	MinPrice *int64
	MaxPrice *int64
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// ParseListParams extracts pagination and price filters from the Gin
// context. Page below 1 is clamped to 1; limit is clamped into
// [1, MaxPageLimit]. Price bounds are decimal strings ("59.90") and
// are both inclusive.
func ParseListParams(c *gin.Context) ListParams {
	cfg := config.GetConfig()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", cfg.DefaultPageLimit))

	params := ListParams{Page: page, Limit: limit}

	if raw := c.Query("min_price"); raw != "" {
		if cents, err := money.ToMinorUnits(raw); err == nil {
			params.MinPrice = &cents
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if cents, err := money.ToMinorUnits(raw); err == nil {
			params.MaxPrice = &cents
		}
	}

	return params.Clamp(cfg.GetMaxPageLimit())
}

// Clamp normalizes page and limit into their allowed ranges.
func (p ListParams) Clamp(maxLimit int) ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// ApplyPriceRange applies the inclusive min/max price filters to a
// GORM query.
func ApplyPriceRange(query *gorm.DB, params ListParams) *gorm.DB {
	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}
	return query
}

// ApplyPagination applies offset/limit to a GORM query
func ApplyPagination(query *gorm.DB, page, limit int) *gorm.DB {
	offset := (page - 1) * limit
	return query.Offset(offset).Limit(limit)
}

// TotalPages computes ceil(total / limit); an empty collection has
// zero pages.
func TotalPages(total int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

// BuildPaginationResponse creates pagination metadata
func BuildPaginationResponse(page, limit int, total int64) PaginationResponse {
	return PaginationResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: TotalPages(total, limit),
	}
}
