package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

//go:generate mockgen -source=links.go -destination=mock_links.go -package=handlers

// LinksGetter returns external game links.
type LinksGetter interface {
	GameLinks(ctx context.Context) []models.Link
}

// LinksResponse represents the game links
// swagger:model LinksResponse
type LinksResponse struct {
	Links []models.Link `json:"links"`
}

// NewLinksHandler returns an HTTP handler listing game links.
// @Summary List game links
// @Tags games
// @Produce json
// @Success 200 {object} handlers.LinksResponse "Game links"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /links [get]
func NewLinksHandler(svc LinksGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links := svc.GameLinks(r.Context())
		if links == nil {
			links = []models.Link{}
		}
		writeJSON(w, http.StatusOK, LinksResponse{Links: links})
	}
}
