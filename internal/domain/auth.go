package domain

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account-creation payload. Role defaults server-side
// when empty.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// AuthResponse is the server reply to login/register: a token pair plus the
// authenticated user record.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// ProfileUpdate carries the editable fields of the current user's profile.
type ProfileUpdate struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
}

// UserUpdate carries the fields an administrator may change on any user.
type UserUpdate struct {
	Name     string `json:"name,omitempty"`
	Role     Role   `json:"role,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
