package dto

import "gin-bomtracker/models"

type AuthStatusResponse struct {
	AuthEnabled   bool `json:"auth_enabled"`
	RequiresSetup bool `json:"requires_setup"`
}

// SetupInput credentials are only required when AuthEnabled is true.
type SetupInput struct {
	AuthEnabled   bool   `json:"auth_enabled"`
	AdminUsername string `json:"admin_username" binding:"omitempty,min=3,max=50"`
	AdminPassword string `json:"admin_password" binding:"omitempty,max=128"`
}

type SetupResponse struct {
	AuthEnabled  bool `json:"auth_enabled"`
	AdminCreated bool `json:"admin_created"`
}

// LoginInput fields may be empty; an empty password is just a wrong one.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

type DisableAuthResponse struct {
	AuthEnabled bool   `json:"auth_enabled"`
	Message     string `json:"message"`
}
