package services

import (
	"errors"
	"gin-bomtracker/constants"
)

var (
	ErrAdminCredentialsRequired = errors.New(constants.ErrAdminCredentialsRequired)
	ErrAuthNotEnabled           = errors.New(constants.ErrAuthNotEnabled)
	ErrAuthAlreadyConfigured    = errors.New(constants.ErrAuthAlreadyConfigured)
	ErrIncorrectCredentials     = errors.New(constants.ErrIncorrectCredentials)
	ErrUserInactive             = errors.New(constants.ErrUserInactive)
	ErrInvalidToken             = errors.New(constants.ErrInvalidToken)
	ErrTokenRevoked             = errors.New(constants.ErrTokenRevoked)
	ErrUsernameExists           = errors.New(constants.ErrUsernameExists)
	ErrUserNotFound             = errors.New(constants.ErrUserNotFound)
	ErrCannotDeleteSelf         = errors.New(constants.ErrCannotDeleteSelf)
	ErrCannotDemoteSelf         = errors.New(constants.ErrCannotDemoteSelf)
	ErrInvalidUsername          = errors.New(constants.ErrInvalidUsername)
	ErrProjectNotFound          = errors.New(constants.ErrProjectNotFound)
	ErrBOMItemNotFound          = errors.New(constants.ErrBOMItemNotFound)
	ErrArchiveNotFound          = errors.New(constants.ErrArchiveNotFound)
	ErrInvalidQuantity          = errors.New(constants.ErrInvalidQuantity)
	ErrInvalidUnitPrice         = errors.New(constants.ErrInvalidUnitPrice)
	ErrReorderMismatch          = errors.New(constants.ErrReorderMismatch)
)
