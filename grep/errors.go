package grep

// ErrorCode defines error types for search operations
type ErrorCode string

const (
	// MissingQuery is returned when no query argument is supplied
	MissingQuery ErrorCode = "MissingQuery"
	// MissingFilePath is returned when no file path argument is supplied
	MissingFilePath ErrorCode = "MissingFilePath"
	// InvalidCaseFlag is returned when the case flag is not a boolean literal
	InvalidCaseFlag ErrorCode = "InvalidCaseFlag"
	// FileReadFailure is returned when the file cannot be read as text
	FileReadFailure ErrorCode = "FileReadFailure"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
