package impl

import (
	"math"
	"net/url"
	"testing"

	domainerrors "tours/internal/domain/errors"
	"tours/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTourQuery_Defaults(t *testing.T) {
	query, fields, err := parseTourQuery(url.Values{})

	require.NoError(t, err)
	assert.Empty(t, query.Filters)
	assert.Equal(t, []repository.SortField{{Field: "createdAt", Desc: true}}, query.Sort)
	assert.Equal(t, 0, query.Offset)
	assert.Equal(t, 100, query.Limit)
	assert.Nil(t, fields)
}

func TestParseTourQuery_Filters(t *testing.T) {
	values, err := url.ParseQuery("difficulty=easy&duration[gte]=5&price[lt]=1500&secretTour=true&price[ne]=3&sort=price")
	require.NoError(t, err)

	query, _, err := parseTourQuery(values)

	require.NoError(t, err)
	assert.Equal(t, []repository.TourFilter{
		{Field: "difficulty", Op: repository.CompareEq, Value: "easy"},
		{Field: "duration", Op: repository.CompareGte, Value: 5.0},
		{Field: "price", Op: repository.CompareLt, Value: 1500.0},
	}, query.Filters)
}

func TestParseTourQuery_MalformedNumber(t *testing.T) {
	_, _, err := parseTourQuery(url.Values{"duration[gte]": {"five"}})

	appErr := assertKind(t, err, domainerrors.KindMalformedReference)
	assert.Equal(t, "Invalid duration: five.", appErr.Message())
}

func TestParseTourQuery_SortFieldsAndPaging(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantSort   []repository.SortField
		wantFields []string
		wantOffset int
		wantLimit  int
	}{
		{
			name: "sort list with descending marker",
			raw:  "sort=-ratingsAverage,price",
			wantSort: []repository.SortField{
				{Field: "ratingsAverage", Desc: true},
				{Field: "price"},
			},
			wantLimit: 100,
		},
		{
			name:       "unknown sort falls back to newest first",
			raw:        "sort=passwordHash",
			wantSort:   []repository.SortField{{Field: "createdAt", Desc: true}},
			wantOffset: 0,
			wantLimit:  100,
		},
		{
			name:       "projection always carries id",
			raw:        "fields=name,price,secretTour,name",
			wantSort:   []repository.SortField{{Field: "createdAt", Desc: true}},
			wantFields: []string{"id", "name", "price"},
			wantLimit:  100,
		},
		{
			name:       "page and limit",
			raw:        "page=3&limit=10",
			wantSort:   []repository.SortField{{Field: "createdAt", Desc: true}},
			wantOffset: 20,
			wantLimit:  10,
		},
		{
			name:       "limit is capped and bad page ignored",
			raw:        "page=-2&limit=500",
			wantSort:   []repository.SortField{{Field: "createdAt", Desc: true}},
			wantOffset: 0,
			wantLimit:  100,
		},
		{
			name:       "huge page saturates offset",
			raw:        "page=9223372036854775807&limit=10",
			wantSort:   []repository.SortField{{Field: "createdAt", Desc: true}},
			wantOffset: math.MaxInt,
			wantLimit:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)

			query, fields, err := parseTourQuery(values)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSort, query.Sort)
			assert.Equal(t, tt.wantFields, fields)
			assert.Equal(t, tt.wantOffset, query.Offset)
			assert.Equal(t, tt.wantLimit, query.Limit)
		})
	}
}
