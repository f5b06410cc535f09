package pkg

// AppError is the single error shape the HTTP layer knows how to render.
// Code is a stable machine-readable identifier, Message is safe to show to a
// user, Err keeps the original cause for logs and errors.Is/As.

type AppError struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Details    []string `json:"details,omitempty"`
	HTTPStatus int      `json:"-"`
	Err        error    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

// NewValidationError carries the ordered field messages produced by the
// validation engine.
func NewValidationError(details []string, httpStatus int) *AppError {
	return &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    "Dados inválidos",
		Details:    details,
		HTTPStatus: httpStatus,
	}
}

// HTTPError is the JSON body written for failed requests.
type HTTPError struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e}
}
