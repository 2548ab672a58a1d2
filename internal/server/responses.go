package server

import "brainly/internal/models"

// MessageResponse is a body carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the signin body.
type TokenResponse struct {
	Token string `json:"token"`
}

// ContentCreatedResponse is the body of a successful content create.
type ContentCreatedResponse struct {
	Message string          `json:"message"`
	Content *models.Content `json:"content"`
}

// ContentListResponse is the body of GET /content.
type ContentListResponse struct {
	Content []models.ContentDetail `json:"content"`
}

// DeleteContentRequest is the body of DELETE /content.
type DeleteContentRequest struct {
	ContentID string `json:"contentId"`
}

// ShareRequest is the body of POST /brain/share.
type ShareRequest struct {
	Share bool `json:"share"`
}

// ShareResponse carries the hash when sharing is enabled and a message when
// it is removed.
type ShareResponse struct {
	Hash    string `json:"hash,omitempty"`
	Message string `json:"message,omitempty"`
}
