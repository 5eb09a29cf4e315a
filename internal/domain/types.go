package domain

// Role of an authenticated principal. Only admins exist today.
type Role string

const RoleAdmin Role = "admin"

// AuthContext is the explicit session capability handed to protected handlers.
// It replaces the browser-local "logged in" flag of the old admin panel.
type AuthContext struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the principal may use the admin area.
func (a AuthContext) IsAdmin() bool {
	return a.UserID != "" && a.Role == RoleAdmin
}
