package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or reset-token hash key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidMailConfigs indicates invalid SMTP settings
	// (for example, missing host, port, or sender address).
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidFrontendConfigs indicates a missing frontend base URL,
	// without which no password-reset link can be built.
	ErrInvalidFrontendConfigs = errors.New("invalid frontend configuration")
)
