package handler

import (
	"net/url"
	"strconv"
	"strings"

	"saleslens/internal/domain/entity"
	domainerrors "saleslens/internal/domain/errors"
)

// Listing query parameters
const (
	paramPage            = "page"
	paramLimit           = "limit"
	paramSearch          = "search"
	paramSortBy          = "sortBy"
	paramCustomerRegion  = "customerRegion"
	paramGender          = "gender"
	paramProductCategory = "productCategory"
	paramPaymentMethod   = "paymentMethod"
	paramTags            = "tags"
	paramMinAge          = "minAge"
	paramMaxAge          = "maxAge"
	paramStartDate       = "startDate"
	paramEndDate         = "endDate"
)

// parseListRequest reads the listing query string. Paging values that are not
// integers fall back to the defaults; malformed ages and dates are rejected.
func parseListRequest(q url.Values) (entity.ListRequest, error) {
	fields := map[string]string{}

	req := entity.ListRequest{
		Search: strings.TrimSpace(q.Get(paramSearch)),
		Filters: entity.FilterCriteria{
			Regions:        multiValue(q, paramCustomerRegion),
			Genders:        multiValue(q, paramGender),
			Categories:     multiValue(q, paramProductCategory),
			PaymentMethods: multiValue(q, paramPaymentMethod),
			Tags:           multiValue(q, paramTags),
		},
		Page: entity.PageRequest{
			Page:     lenientInt(q.Get(paramPage), 1),
			PageSize: lenientInt(q.Get(paramLimit), entity.DefaultPageSize),
			Sort:     entity.SortKey(strings.TrimSpace(q.Get(paramSortBy))),
		},
	}

	minAge := optionalInt(q, paramMinAge, fields)
	maxAge := optionalInt(q, paramMaxAge, fields)
	if minAge != nil || maxAge != nil {
		req.Filters.Age = &entity.AgeRange{Min: minAge, Max: maxAge}
	}

	start := optionalDate(q, paramStartDate, fields)
	end := optionalDate(q, paramEndDate, fields)
	if start != nil || end != nil {
		req.Filters.Dates = &entity.DateRange{Start: start, End: end}
	}

	if len(fields) > 0 {
		return entity.ListRequest{}, domainerrors.NewValidationError(fields)
	}

	return req, nil
}

// multiValue collects a repeated parameter, dropping blanks
func multiValue(q url.Values, key string) []string {
	raw := q[key]
	if len(raw) == 0 {
		raw = q[key+"[]"]
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

func lenientInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}

	return n
}

func optionalInt(q url.Values, key string, fields map[string]string) *int {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		fields[key] = "must be an integer"

		return nil
	}

	return &n
}

func optionalDate(q url.Values, key string, fields map[string]string) *entity.DateBound {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}

	bound, err := entity.ParseDateBound(raw)
	if err != nil {
		fields[key] = "must be YYYY-MM-DD or an RFC 3339 timestamp"

		return nil
	}

	return bound
}
