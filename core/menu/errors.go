package menu

import "errors"

var (
	// ErrAlreadyExists is returned when a dish name is already on the menu.
	ErrAlreadyExists = errors.New("dish already exists")
	// ErrNotFound is returned when the dish to rename is not on the menu.
	ErrNotFound = errors.New("dish not found")
	// ErrEmptyName is returned when a dish name is empty after trimming.
	ErrEmptyName = errors.New("dish name is empty")
)
