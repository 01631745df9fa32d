package store

import "errors"

// ErrPresetNotFound is returned when no preset has the requested name.
var ErrPresetNotFound = errors.New("preset not found")

// ErrEmptyName is returned when saving a preset whose name is blank.
var ErrEmptyName = errors.New("preset name is empty")
