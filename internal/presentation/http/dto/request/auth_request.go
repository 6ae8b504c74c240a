package request

// RegisterRequest represents the account registration payload
type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
	BusinessName string `json:"business_name" binding:"required"`
	Category     string `json:"category"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the token refresh payload
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents the password change payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// EmployeeRequest represents the employee create/update payload
type EmployeeRequest struct {
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Password    string   `json:"password"`
	Permissions []string `json:"permissions"`
}
