package models

import "strings"

// Role is the server-side role of a user.
type Role string

const (
	RoleUser   Role = "user"
	RoleReader Role = "reader"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      Role   `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IsEditor reports whether u may manage articles. Admins are editors too.
func (u *User) IsEditor() bool {
	return u != nil && (u.Role == RoleEditor || u.Role == RoleAdmin)
}

// IsReader is true for both "user" and "reader", the server uses them
// interchangeably.
func (u *User) IsReader() bool {
	return u != nil && (u.Role == RoleUser || u.Role == RoleReader || u.Role == "")
}

// DisplayName returns "First Last" when known, the username otherwise.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full != "" {
		return full
	}
	return u.Username
}

// Merge copies the non-zero fields of other into u. IsActive is taken from
// other only when other carries an identity, so a partial update cannot
// deactivate the user.
func (u *User) Merge(other *User) {
	if u == nil || other == nil {
		return
	}
	if other.ID != 0 {
		u.ID = other.ID
		u.IsActive = other.IsActive
	}
	if other.Username != "" {
		u.Username = other.Username
	}
	if other.Email != "" {
		u.Email = other.Email
	}
	if other.FirstName != "" {
		u.FirstName = other.FirstName
	}
	if other.LastName != "" {
		u.LastName = other.LastName
	}
	if other.Role != "" {
		u.Role = other.Role
	}
	if other.CreatedAt != "" {
		u.CreatedAt = other.CreatedAt
	}
	if other.UpdatedAt != "" {
		u.UpdatedAt = other.UpdatedAt
	}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// AuthResult is what login and register return.
type AuthResult struct {
	User        *User
	AccessToken string
}

// ProfileUpdate is the body of PUT /users/profile. Empty fields are omitted
// and left untouched by the server.
type ProfileUpdate struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func (p ProfileUpdate) IsEmpty() bool {
	return p == ProfileUpdate{}
}

type UserPage struct {
	Users []User
	Page  int
	Limit int
}
