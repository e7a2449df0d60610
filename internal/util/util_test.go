package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "spaces", in: "The Forest Hiker", expected: "the-forest-hiker"},
		{name: "diacritics", in: "Crème Brûlée Tour", expected: "creme-brulee-tour"},
		{name: "punctuation runs", in: "  Snow -- Adventurer!! ", expected: "snow-adventurer"},
		{name: "digits", in: "Route 66 Explorer", expected: "route-66-explorer"},
		{name: "empty", in: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Slugify(tt.in))
		})
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	m := map[string]any{"name": "Jonas", "email": "jonas@example.com", "role": "admin"}

	assert.Equal(t, map[string]any{"name": "Jonas", "email": "jonas@example.com"}, Pick(m, "name", "email", "photo"))
	assert.Empty(t, Pick(m))
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"price", "-ratingsAverage"}, SplitList("price, -ratingsAverage,"))
	assert.Empty(t, SplitList(" , "))
}
