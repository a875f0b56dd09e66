package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// APIError is an error reported by the hosted store itself, as opposed to a
// transport failure reaching it.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("store error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("store error %d: %s", e.StatusCode, e.Message)
}

// errorBody covers the shapes used by the data API ({message, code}) and
// the auth API ({msg, error_code} or {error, error_description}).
type errorBody struct {
	Message          string          `json:"message"`
	Msg              string          `json:"msg"`
	ErrorDescription string          `json:"error_description"`
	Error            string          `json:"error"`
	Code             json.RawMessage `json:"code"`
	ErrorCode        string          `json:"error_code"`
}

// NewAPIError builds an APIError from a failed store response.
func NewAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		apiErr.Message = strings.TrimSpace(resp.String())
		if apiErr.Message == "" {
			apiErr.Message = resp.Status()
		}
		return apiErr
	}

	for _, msg := range []string{body.Message, body.Msg, body.ErrorDescription, body.Error} {
		if msg != "" {
			apiErr.Message = msg
			break
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.Status()
	}

	apiErr.Code = body.ErrorCode
	if apiErr.Code == "" && len(body.Code) > 0 {
		apiErr.Code = strings.Trim(string(body.Code), `"`)
	}
	return apiErr
}
