package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-points-gateway/internal/catalog"
	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

//go:generate mockgen -source=categories.go -destination=mock_categories.go -package=handlers

// CategoriesLister returns the backend game catalog.
type CategoriesLister interface {
	GameCategories(ctx context.Context) []models.Category
}

// CategoriesResponse represents the localized game catalog
// swagger:model CategoriesResponse
type CategoriesResponse struct {
	// Categories with localized names
	Categories []models.Category `json:"categories"`

	// Id of the cock-fight category, empty when absent
	// default: 12
	SpecialCategoryID string `json:"special_category_id,omitempty"`
}

// NewCategoriesHandler returns an HTTP handler listing game categories.
// An unreachable backend yields an empty list.
// @Summary List game categories
// @Description Returns game categories with names resolved for the requested locale
// @Tags games
// @Produce json
// @Param locale query string false "Locale" default(en)
// @Success 200 {object} handlers.CategoriesResponse "Game categories"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /categories [get]
func NewCategoriesHandler(svc CategoriesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := r.URL.Query().Get("locale")
		if locale == "" {
			locale = catalog.DefaultLocale
		}

		raw := svc.GameCategories(r.Context())

		resp := CategoriesResponse{Categories: []models.Category{}}
		if special, ok := catalog.FindSpecialCategory(raw); ok {
			resp.SpecialCategoryID = special.ID.String()
		}
		if len(raw) > 0 {
			resp.Categories = catalog.Localize(catalog.AssignMissingGameIDs(raw, time.Now()), locale)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
