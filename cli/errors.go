package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidColorMode ErrorCode = "InvalidColorMode"
	OutputFailure    ErrorCode = "OutputFailure"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
