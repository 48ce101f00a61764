// Package cmd provides CLI command implementations.
package cmd

// Exit codes returned by the recipegen binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates any failure: unknown recipe type, invalid
	// request, filesystem error or bad flags.
	ExitGeneralError = 1
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	default:
		return "Unknown"
	}
}
