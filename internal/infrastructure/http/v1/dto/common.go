// Package dto provides the public request/response shapes of the API.
//
// Every endpoint answers with one Envelope. The mobile client switches on
// the embedded status_code, not on the HTTP status, so field names here are
// snake_case and fixed: additions are fine, renames are breaking.
package dto

import (
	"encoding/json"

	"storefront/internal/domain"
	"storefront/internal/domain/filter"
)

// Envelope statuses mirrored in the body for the mobile client.
const (
	StatusSuccess = 200
	StatusFailure = 500
)

// dateLayout is the display format of all dates in responses.
const dateLayout = "02-01-2006"

// inputDateLayout is the accepted format of dates in requests.
const inputDateLayout = "2006-01-02"

// Envelope is the uniform response wrapper.
type Envelope struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

// Success wraps data into a success envelope.
func Success(data any) Envelope {
	return Envelope{
		StatusCode: StatusSuccess,
		Message:    "success",
		Data:       data,
	}
}

// Failure wraps an error message into a failure envelope. No data, ever.
func Failure(message string) Envelope {
	return Envelope{
		StatusCode: StatusFailure,
		Message:    message,
	}
}

// ListQuery carries the common list parameters.
type ListQuery struct {
	Search     string `form:"search"`
	Start      int    `form:"start" binding:"min=0"`
	PageLength int    `form:"page_length" binding:"min=0,max=100"`
	OrderBy    string `form:"order_by"`

	// Filters is a JSON-encoded array of {field, operator, value} objects.
	Filters string `form:"filters"`
}

// ToListFilter converts query parameters into a domain list filter.
func (q ListQuery) ToListFilter() (domain.ListFilter, error) {
	f := domain.DefaultListFilter()
	f.Search = q.Search
	if q.Start > 0 {
		f.Start = q.Start
	}
	if q.PageLength > 0 {
		f.PageLength = q.PageLength
	}
	if q.OrderBy != "" {
		f.OrderBy = q.OrderBy
	}

	if q.Filters != "" {
		var items []filter.Item
		if err := json.Unmarshal([]byte(q.Filters), &items); err != nil {
			return f, err
		}
		f.Filters = items
	}
	return f, nil
}
