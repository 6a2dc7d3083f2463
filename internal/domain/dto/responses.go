package dto

import (
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/entity"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/model"
)

// ErrorResponse is the uniform error body returned by the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateDonationResponse returns the provider handle the client needs to
// complete payment. The client secret is only ever returned here.
type CreateDonationResponse struct {
	DonationID   string `json:"donation_id"`
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// AuthResponse returns the issued session token alongside the account.
type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// UploadResponse returns the public URL of a stored media object.
type UploadResponse struct {
	URL string `json:"url"`
}

// CampaignListResponse is the paginated campaign list body.
type CampaignListResponse struct {
	Items      []*model.Campaign     `json:"items"`
	Pagination entity.PaginationMeta `json:"pagination"`
}

// DonationListResponse is the paginated donation list body.
type DonationListResponse struct {
	Items      []*model.Donation     `json:"items"`
	Pagination entity.PaginationMeta `json:"pagination"`
}

// UserListResponse is the paginated user list body.
type UserListResponse struct {
	Items      []*model.User         `json:"items"`
	Pagination entity.PaginationMeta `json:"pagination"`
}
