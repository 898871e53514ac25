// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, validation, not found,
	// position out of range).
	UserError = 1

	// StoreError indicates the store rejected an operation the caller could
	// not have prevented, such as a duplicate id.
	StoreError = 2

	// ConfigError indicates an unreadable or malformed config file.
	ConfigError = 3
)
