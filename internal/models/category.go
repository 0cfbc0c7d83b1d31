package models

import "encoding/json"

// Category is a game category with its items.
// Name is a JSON object encoded as a string, keyed by locale.
type Category struct {
	ID         json.Number `json:"id"`
	Name       string      `json:"name"`
	IconImage  string      `json:"icon_image"`
	IconActive string      `json:"icon_active,omitempty"`
	Link       *string     `json:"link,omitempty"`
	GameItems  []GameItem  `json:"game_items"`
}

// GameItem is a playable game inside a category.
type GameItem struct {
	ID             json.Number `json:"id,omitempty"`
	Name           string      `json:"name"`
	GameID         GameID      `json:"game_id"`
	GameCategoryID json.Number `json:"game_category_id,omitempty"`
	GamePlatformID string      `json:"game_platform_id"`
	Icon           string      `json:"icon,omitempty"`
	IconSquare     string      `json:"icon_square,omitempty"`
	IconRectangle  string      `json:"icon_rectangle,omitempty"`
	IsHot          int         `json:"is_hot,omitempty"`
	IsNew          int         `json:"is_new,omitempty"`
	Status         int         `json:"status,omitempty"`
}

// GameCategoriesResponse is the backend categories payload.
type GameCategoriesResponse struct {
	Games []Category `json:"games"`
}

// Link is a game link returned after the special-flow transfer.
type Link struct {
	Value string `json:"value"`
}

// LinksResponse is the backend links payload.
type LinksResponse struct {
	Data []Link `json:"data"`
}

// GameLoginRequest is the transfer ("login to game") body.
type GameLoginRequest struct {
	GameID GameID `json:"game_id"`
	Points int64  `json:"points"`
}
