package dto

import (
	"fmt"
	"net/http"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/timezone"
	"strconv"
	"strings"
)

type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty,min=1"`
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

// FromRequest populates QueryParams from the HTTP request.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, true)
//
// With `defaultRequest` set to true, Page and Limit fall back to their defaults when absent or invalid.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// ReferenceTimeFromRequest reads the `at` query parameter as epoch milliseconds or a civil-time
// string. Without it the current time is used; this is the only place a view reads the clock.
func ReferenceTimeFromRequest(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamReferenceTime))
	if raw == constant.Empty {
		return timezone.NowMillis(), nil
	}

	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ms, nil
	}

	ms, err := timezone.ParseCivil(raw)
	if err != nil {
		return 0, failure.BadRequest(fmt.Errorf("%s: %w", failure.InvalidReferenceTime.Message, err)) //nolint:wrapcheck
	}

	return ms, nil
}
