package models

// ProfileResponse is the safe projection of a user account returned to
// clients: every attribute except the password hash. Token is populated only
// by the register and login flows, which also set the session cookie.
type ProfileResponse struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Photo  string `json:"photo"`
	Phone  string `json:"phone"`
	Bio    string `json:"bio"`
	Token  string `json:"token,omitempty"`
}

// NewProfileResponse builds a ProfileResponse from a user record.
func NewProfileResponse(user User, token string) ProfileResponse {
	return ProfileResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Photo:  user.Photo,
		Phone:  user.Phone,
		Bio:    user.Bio,
		Token:  token,
	}
}

// MessageResponse is a minimal JSON envelope for flows that return only a
// human-readable status line (logout, forgot-password, reset-password).
type MessageResponse struct {
	Message string `json:"message"`
}
