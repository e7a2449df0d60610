package impl

import (
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	domainerrors "tours/internal/domain/errors"
	"tours/internal/domain/repository"
	"tours/internal/util"
)

const (
	defaultPage      = 1
	defaultPageLimit = 100
	maxPageLimit     = 100
)

// reservedTourParams control paging, ordering and projection rather than filtering.
var reservedTourParams = map[string]bool{
	"page":   true,
	"sort":   true,
	"limit":  true,
	"fields": true,
}

// numericTourFields accept gte, gt, lte and lt besides equality.
var numericTourFields = map[string]bool{
	"duration":        true,
	"maxGroupSize":    true,
	"ratingsAverage":  true,
	"ratingsQuantity": true,
	"price":           true,
}

var sortableTourFields = map[string]bool{
	"name":            true,
	"duration":        true,
	"maxGroupSize":    true,
	"difficulty":      true,
	"ratingsAverage":  true,
	"ratingsQuantity": true,
	"price":           true,
	"priceDiscount":   true,
	"createdAt":       true,
}

// projectableTourFields are the attributes a caller may select with fields=.
var projectableTourFields = map[string]bool{
	"id":              true,
	"name":            true,
	"slug":            true,
	"duration":        true,
	"durationWeeks":   true,
	"maxGroupSize":    true,
	"difficulty":      true,
	"ratingsAverage":  true,
	"ratingsQuantity": true,
	"price":           true,
	"priceDiscount":   true,
	"summary":         true,
	"description":     true,
	"imageCover":      true,
	"images":          true,
	"startDates":      true,
}

var rangeOperators = map[string]repository.Comparison{
	"gte": repository.CompareGte,
	"gt":  repository.CompareGt,
	"lte": repository.CompareLte,
	"lt":  repository.CompareLt,
}

var defaultTourSort = []repository.SortField{{Field: "createdAt", Desc: true}}

// parseTourQuery turns listing query parameters into a repository query and a
// field projection. Unknown attributes and operators are ignored; a value that
// cannot be read as a number is a MalformedReference.
func parseTourQuery(values url.Values) (repository.TourQuery, []string, error) {
	filters, err := parseTourFilters(values)
	if err != nil {
		return repository.TourQuery{}, nil, err
	}

	page := positiveInt(values.Get("page"), defaultPage)
	limit := min(positiveInt(values.Get("limit"), defaultPageLimit), maxPageLimit)

	return repository.TourQuery{
		Filters: filters,
		Sort:    parseTourSort(values.Get("sort")),
		Offset:  pageOffset(page, limit),
		Limit:   limit,
	}, parseTourFields(values.Get("fields")), nil
}

func parseTourFilters(values url.Values) ([]repository.TourFilter, error) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var filters []repository.TourFilter
	for _, key := range keys {
		if reservedTourParams[key] {
			continue
		}
		field, op, ok := splitFilterKey(key)
		if !ok {
			continue
		}

		for _, raw := range values[key] {
			switch {
			case field == "difficulty" && op == repository.CompareEq:
				filters = append(filters, repository.TourFilter{Field: field, Op: op, Value: raw})
			case numericTourFields[field]:
				n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
				if err != nil {
					return nil, domainerrors.NewMalformedReferenceError(field, raw)
				}
				filters = append(filters, repository.TourFilter{Field: field, Op: op, Value: n})
			}
		}
	}

	return filters, nil
}

// splitFilterKey reads "price[lt]" as (price, lt) and "difficulty" as (difficulty, eq).
func splitFilterKey(key string) (string, repository.Comparison, bool) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return key, repository.CompareEq, true
	}
	if !strings.HasSuffix(key, "]") {
		return "", "", false
	}

	op, ok := rangeOperators[key[open+1:len(key)-1]]
	if !ok {
		return "", "", false
	}

	return key[:open], op, true
}

func parseTourSort(raw string) []repository.SortField {
	var sort []repository.SortField
	for _, item := range util.SplitList(raw) {
		desc := strings.HasPrefix(item, "-")
		field := strings.TrimPrefix(item, "-")
		if sortableTourFields[field] {
			sort = append(sort, repository.SortField{Field: field, Desc: desc})
		}
	}
	if len(sort) == 0 {
		return defaultTourSort
	}

	return sort
}

// parseTourFields keeps known attributes, always leading with id. An empty
// result means the full representation.
func parseTourFields(raw string) []string {
	fields := []string{"id"}
	for _, field := range util.SplitList(raw) {
		if projectableTourFields[field] && !slices.Contains(fields, field) {
			fields = append(fields, field)
		}
	}
	if len(fields) == 1 {
		return nil
	}

	return fields
}

// pageOffset saturates at math.MaxInt so a huge page lands past the last row.
func pageOffset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}

	return (page - 1) * limit
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}

	return n
}
