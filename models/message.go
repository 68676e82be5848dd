package models

import "time"

// GenerateRequest represents the input of a message generation call.
type GenerateRequest struct {
	Item  Item   `json:"item"`
	Style string `json:"style"`
}

// GeneratedMessage represents the response returned to the catalog layer.
type GeneratedMessage struct {
	ItemID    string    `json:"itemId"`
	Style     string    `json:"style"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
