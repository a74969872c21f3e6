package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrScanRunNotFound    = errors.New("scan run not found")
	ErrScanInProgress     = errors.New("a scan is already in progress")
	ErrNoDocuments        = errors.New("document source returned no documents")
	ErrFoodTableInvalid   = errors.New("food table is invalid")
)
