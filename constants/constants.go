package constants

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Project statuses
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusArchived  = "archived"
)

// Archive statuses
const (
	ArchiveStatusCompleted = "completed"
	ArchiveStatusFailed    = "failed"
	ArchiveStatusCancelled = "cancelled"
)

// Setting keys
const (
	SettingAuthEnabled    = "auth_enabled"
	SettingSetupCompleted = "setup_completed"
)

// gin context keys
const (
	ContextUserKey  = "user"
	ContextTokenKey = "token"
)

const TokenTypeBearer = "bearer"

// Error messages
const (
	ErrUnexpected               = "Unexpected error"
	ErrInvalidID                = "Invalid id"
	ErrInvalidInput             = "Invalid input"
	ErrAdminCredentialsRequired = "Admin username and password are required when enabling authentication"
	ErrAuthNotEnabled           = "Authentication is not enabled"
	ErrAuthAlreadyConfigured    = "Authentication is already configured"
	ErrIncorrectCredentials     = "Incorrect username or password"
	ErrUserInactive             = "User account is disabled"
	ErrNotAuthenticated         = "Not authenticated"
	ErrInvalidToken             = "Could not validate credentials"
	ErrTokenRevoked             = "Token has been revoked"
	ErrInsufficientRole         = "Insufficient permissions"
	ErrUsernameExists           = "Username already exists"
	ErrUserNotFound             = "User not found"
	ErrCannotDeleteSelf         = "Cannot delete your own account"
	ErrCannotDemoteSelf         = "Cannot remove your own admin role or deactivate your own account"
	ErrInvalidUsername          = "Username must be between 3 and 50 characters"
	ErrProjectNotFound          = "Project not found"
	ErrBOMItemNotFound          = "BOM item not found"
	ErrArchiveNotFound          = "Archive not found"
	ErrInvalidQuantity          = "Quantities must be non-negative and quantity_needed at least 1"
	ErrInvalidUnitPrice         = "unit_price must not be negative"
	ErrReorderMismatch          = "item_ids must list BOM items of this project"
)
