package plaid

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error types reported in error_type.
const (
	ErrorTypeInvalidRequest = "INVALID_REQUEST"
	ErrorTypeInvalidInput   = "INVALID_INPUT"
	ErrorTypeRateLimit      = "RATE_LIMIT_EXCEEDED"
	ErrorTypeAPI            = "API_ERROR"
	ErrorTypeItem           = "ITEM_ERROR"
	ErrorTypeInstitution    = "INSTITUTION_ERROR"
)

// Error codes reported in error_code.
const (
	CodeInvalidAccessToken = "INVALID_ACCESS_TOKEN"
	CodeInvalidAccountID   = "INVALID_ACCOUNT_ID"
	CodeInvalidPublicToken = "INVALID_PUBLIC_TOKEN"
	CodeItemLoginRequired  = "ITEM_LOGIN_REQUIRED"
	CodeInternalServer     = "INTERNAL_SERVER_ERROR"
)

var ErrMissingAccessToken = errors.New("access token is required")

type APIError struct {
	DisplayMessage *string `json:"display_message"`
	ErrorCode      string  `json:"error_code"`
	ErrorMessage   string  `json:"error_message"`
	ErrorType      string  `json:"error_type"`
	RequestID      string  `json:"request_id"`
	StatusCode     int     `json:"-"`
}

func (e *APIError) CanDisplay() bool {
	return e.DisplayMessage != nil
}

func (e APIError) Error() string {
	return fmt.Sprintf("%v (type: %v code: %v request: %v)",
		e.ErrorMessage, e.ErrorType, e.ErrorCode, e.RequestID)
}

// Matches reports whether e carries the given type and code.
func (e APIError) Matches(errorType, errorCode string) bool {
	return e.ErrorType == errorType && e.ErrorCode == errorCode
}

// AsAPIError unwraps err down to the APIError returned by the API, if any.
func AsAPIError(err error) (*APIError, bool) {
	if err == nil {
		return nil, false
	}
	switch e := errors.Cause(err).(type) {
	case APIError:
		return &e, true
	case *APIError:
		return e, e != nil
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.ErrorCode == code
}

func IsInvalidAccessToken(err error) bool {
	return hasCode(err, CodeInvalidAccessToken)
}

func IsInvalidAccountID(err error) bool {
	return hasCode(err, CodeInvalidAccountID)
}

func IsItemLoginRequired(err error) bool {
	return hasCode(err, CodeItemLoginRequired)
}
