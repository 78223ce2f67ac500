package shared

// shared types across the application
// 1st: auth claims structure for JWT authentication in the HTTP API
// 2nd: add more shared types as needed

type AuthClaims struct {
	UserID   string `json:"user_id" db:"user_id"`    // user identifier (UUID)
	UserName string `json:"username" db:"user_name"` // username
	Role     string `json:"role" db:"role"`          // user role (user/admin)
}
