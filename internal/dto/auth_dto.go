package dto

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration. The public endpoint only
// mints consumer accounts; creator accounts come from the admin-gated
// endpoint and admins only from seeding.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=consumer"`
}

// CreateCreatorRequest: payload for admin-driven creator account creation
type CreateCreatorRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse: public-safe projection of a user (no credential material)
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse: token plus the public projection of the authenticated user
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
