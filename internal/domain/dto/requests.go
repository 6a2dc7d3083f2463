package dto

import "time"

// CreateCampaignRequest is the payload for creating a campaign. RaisedAmount
// is intentionally absent: it is derived from succeeded donations only.
type CreateCampaignRequest struct {
	Name        string    `json:"name" validate:"required,min=3,max=120"`
	Category    string    `json:"category" validate:"required,max=50"`
	Description string    `json:"description" validate:"max=5000"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
	VideoURL    string    `json:"video_url" validate:"omitempty,url"`
	GoalAmount  float64   `json:"goal_amount" validate:"required,gt=0"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}

// UpdateCampaignRequest carries the owner-editable campaign fields.
type UpdateCampaignRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=3,max=120"`
	Category    *string    `json:"category" validate:"omitempty,max=50"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	ImageURL    *string    `json:"image_url" validate:"omitempty,url"`
	VideoURL    *string    `json:"video_url" validate:"omitempty,url"`
	GoalAmount  *float64   `json:"goal_amount" validate:"omitempty,gt=0"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// RejectCampaignRequest carries the optional moderation reason.
type RejectCampaignRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// CreateDonationRequest is the payload for starting a donation.
type CreateDonationRequest struct {
	CampaignID string  `json:"campaign_id" validate:"required,uuid"`
	Amount     float64 `json:"amount" validate:"required"`
	Currency   string  `json:"currency" validate:"omitempty,len=3"`
	Message    string  `json:"message" validate:"max=500"`
	Anonymous  bool    `json:"anonymous"`
	HideAmount bool    `json:"hide_amount"`
}

// RefundDonationRequest is the payload for refunding a succeeded donation.
type RefundDonationRequest struct {
	Amount float64 `json:"amount" validate:"omitempty,gt=0"`
	Reason string  `json:"reason" validate:"max=255"`
}

// RegisterRequest is the payload for password-based registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the payload for password-based login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ExternalLoginRequest carries an opaque bearer token from the external
// identity provider.
type ExternalLoginRequest struct {
	Token string `json:"token" validate:"required"`
}

// UpdateProfileRequest carries the self-editable profile fields.
type UpdateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
}

// UpdateRoleRequest is the admin payload for changing a user's role.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}
