package scaffold

import "errors"

// Sentinel errors for the scaffold package.
var (
	// ErrInvalidName indicates the project name failed validation.
	ErrInvalidName = errors.New("invalid project name")

	// ErrTemplateNotFound indicates no template is registered under the requested name.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrProjectExists indicates the target project directory is already present.
	ErrProjectExists = errors.New("directory already exists")
)
