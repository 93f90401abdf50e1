package usecase

// Error codes returned to the handler. Sink failures (sheet append,
// mail, queue) never surface here: they are logged and counted where
// they happen.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeLookupFailed = "LOOKUP_FAILED"
	CodeWriteFailed  = "WRITE_FAILED"
	CodeUnknown      = "UNKNOWN"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
