package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChanged(t *testing.T) {
	t.Parallel()

	current := map[string]interface{}{
		"name":        "Starfall Odyssey",
		"description": "Space exploration",
		"price":       int64(5990),
	}

	tests := []struct {
		name      string
		requested map[string]interface{}
		want      map[string]interface{}
	}{
		{
			name:      "empty request yields empty change-set",
			requested: map[string]interface{}{},
			want:      map[string]interface{}{},
		},
		{
			name: "identical values yield empty change-set",
			requested: map[string]interface{}{
				"name":  "Starfall Odyssey",
				"price": int64(5990),
			},
			want: map[string]interface{}{},
		},
		{
			name: "only differing keys survive",
			requested: map[string]interface{}{
				"name":  "Starfall Odyssey",
				"price": int64(4990),
			},
			want: map[string]interface{}{"price": int64(4990)},
		},
		{
			name: "keys absent from current are always changes",
			requested: map[string]interface{}{
				"release_year": 2026,
			},
			want: map[string]interface{}{"release_year": 2026},
		},
		{
			name: "omitted keys never appear in the change-set",
			requested: map[string]interface{}{
				"description": "Updated description",
			},
			want: map[string]interface{}{"description": "Updated description"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Changed(current, tt.requested))
		})
	}
}

func TestChanged_TypeMattersInComparison(t *testing.T) {
	t.Parallel()

	current := map[string]interface{}{"price": int64(100)}
	requested := map[string]interface{}{"price": 100}

	// int and int64 are not equal under interface comparison; callers
	// must project both sides into the same types.
	changes := Changed(current, requested)
	assert.Len(t, changes, 1)
}
