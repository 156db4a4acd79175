package dto

type CreateUserInput struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Role     string `json:"role" binding:"omitempty,userrole"`
}

// UpdateUserInput leaves nil fields unchanged.
type UpdateUserInput struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Password *string `json:"password" binding:"omitempty,min=6,max=128"`
	Role     *string `json:"role" binding:"omitempty,userrole"`
	IsActive *bool   `json:"is_active"`
}
