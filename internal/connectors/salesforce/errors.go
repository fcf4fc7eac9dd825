package salesforce

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/custodia-labs/orgopen/internal/core/domain"
)

// APIError represents an error response from the REST API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("salesforce: API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("salesforce: API error %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// Unwrap maps the response onto a domain error.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return domain.ErrAuthRequired
	}
	return domain.ErrOrgQuery
}

// LimitError indicates the org's daily API allocation is nearly exhausted.
type LimitError struct {
	Used  int
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("salesforce: daily API limit nearly exhausted (%d/%d used)", e.Used, e.Limit)
}

// Unwrap returns domain.ErrOrgQuery.
func (e *LimitError) Unwrap() error {
	return domain.ErrOrgQuery
}

// errorBody is one element of the JSON array the API returns on failure.
type errorBody struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// toAPIError builds an APIError from a failed response.
func toAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var bodies []errorBody
	if err := json.Unmarshal(resp.Body(), &bodies); err != nil || len(bodies) == 0 {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode())
		}
		return apiErr
	}

	apiErr.Code = bodies[0].ErrorCode
	apiErr.Message = bodies[0].Message
	return apiErr
}

// IsUnauthorized checks if the error indicates an expired or invalid session.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsMalformedQuery checks if the org rejected the SOQL itself.
func IsMalformedQuery(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == "MALFORMED_QUERY" || apiErr.Code == "INVALID_FIELD" || apiErr.Code == "INVALID_TYPE"
	}
	return false
}
