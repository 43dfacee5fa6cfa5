package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: server errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: non-numeric todo IDs, missing flags.
	ExitUsage = 2

	// ExitNotFound indicates the requested todo does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates the server answered with data the CLI could not read.
	ExitDataErr = 4

	// ExitValidation indicates the server rejected the input, e.g. an empty title.
	ExitValidation = 5
)
