package dto

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/crowdfund-search/internal/domain"
	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
)

const (
	msgInteger  = "must be a valid integer"
	msgNumber   = "must be a valid number"
	msgPositive = "must be at least 1"
)

// ParseSearchRequest builds a campaign query from the query string of
// GET /api/v1/campaigns/search. Absent or empty parameters leave the
// corresponding filter unset; page defaults to 1 and per_page to 0, which the
// catalog service replaces with its configured default.
//
// Every malformed parameter is reported in one *domain.ValidationError keyed
// by parameter name. Enum values and goal ranges are checked as well, so the
// returned query is safe to pass to the catalog.
func ParseSearchRequest(values url.Values) (campaign.Query, error) {
	fields := make(map[string]string)
	q := campaign.Query{Page: 1}

	q.Filters.Name = values.Get("name")
	q.Filters.Status = campaign.Status(strings.TrimSpace(values.Get("status")))
	q.Filters.SortBy = campaign.SortBy(strings.TrimSpace(values.Get("sort_by")))

	if raw := strings.TrimSpace(values.Get("category")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		switch {
		case err != nil:
			fields["category"] = msgInteger
		case id != 0:
			q.Filters.CategoryID = &id
		}
	}
	if v, ok := parseAmount(values, "min_goal", fields); ok {
		q.Filters.MinGoal = v
	}
	if v, ok := parseAmount(values, "max_goal", fields); ok {
		q.Filters.MaxGoal = v
	}
	if n, ok := parsePositive(values, "page", fields); ok {
		q.Page = n
	}
	if n, ok := parsePositive(values, "per_page", fields); ok {
		q.PerPage = n
	}

	q.Filters = q.Filters.Normalize()
	if err := q.Filters.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			for field, msg := range verr.Fields {
				if _, exists := fields[field]; !exists {
					fields[field] = msg
				}
			}
		}
	}

	if len(fields) > 0 {
		return campaign.Query{}, &domain.ValidationError{Fields: fields}
	}
	return q, nil
}

// parseAmount reads an optional non-negative decimal parameter.
func parseAmount(values url.Values, name string, fields map[string]string) (*float64, bool) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fields[name] = msgNumber
		return nil, false
	}
	return &v, true
}

// parsePositive reads an optional integer parameter that must be >= 1.
func parsePositive(values url.Values, name string, fields map[string]string) (int, bool) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fields[name] = msgInteger
		return 0, false
	}
	if n < 1 {
		fields[name] = msgPositive
		return 0, false
	}
	return n, true
}
