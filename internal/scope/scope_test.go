package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"
)

func TestResolvePredicate(t *testing.T) {
	loc := models.Location{City: "Austin", State: "Texas", Country: "USA"}

	tests := []struct {
		name string
		sel  models.ScopeSelector
		want func(t *testing.T, p Predicate)
	}{
		{
			name: "city scope filters by city",
			sel:  models.ScopeSelector{Scope: models.ScopeCity, Location: loc},
			want: func(t *testing.T, p Predicate) {
				require.NotNil(t, p.City)
				assert.Equal(t, "Austin", *p.City)
				assert.Nil(t, p.State)
				assert.Nil(t, p.Country)
			},
		},
		{
			name: "state scope filters by state",
			sel:  models.ScopeSelector{Scope: models.ScopeState, Location: loc},
			want: func(t *testing.T, p Predicate) {
				require.NotNil(t, p.State)
				assert.Equal(t, "Texas", *p.State)
			},
		},
		{
			name: "country scope filters by country",
			sel:  models.ScopeSelector{Scope: models.ScopeCountry, Location: loc},
			want: func(t *testing.T, p Predicate) {
				require.NotNil(t, p.Country)
				assert.Equal(t, "USA", *p.Country)
			},
		},
		{
			name: "world scope is unfiltered",
			sel:  models.ScopeSelector{Scope: models.ScopeWorld, Location: loc},
			want: func(t *testing.T, p Predicate) {
				assert.True(t, p.Unfiltered())
			},
		},
		{
			name: "city scope without city falls back to world",
			sel:  models.ScopeSelector{Scope: models.ScopeCity},
			want: func(t *testing.T, p Predicate) {
				assert.True(t, p.Unfiltered())
			},
		},
		{
			name: "state scope without state falls back to world",
			sel:  models.ScopeSelector{Scope: models.ScopeState, Location: models.Location{City: "Austin"}},
			want: func(t *testing.T, p Predicate) {
				assert.True(t, p.Unfiltered())
			},
		},
		{
			name: "unknown scope falls back to world",
			sel:  models.ScopeSelector{Scope: models.Scope("galaxy"), Location: loc},
			want: func(t *testing.T, p Predicate) {
				assert.True(t, p.Unfiltered())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, ResolvePredicate(tt.sel))
		})
	}
}
