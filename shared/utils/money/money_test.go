package money

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore-backend/shared/utils/apperrors"
)

func TestToMinorUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int64
	}{
		{input: "0", want: 0},
		{input: "0.00", want: 0},
		{input: "1", want: 100},
		{input: "19.5", want: 1950},
		{input: "59.90", want: 5990},
		{input: "59.99", want: 5999},
		{input: "0.01", want: 1},
		{input: "0.1", want: 10},
		// third fractional digit rounds half up
		{input: "1.005", want: 101},
		{input: "1.004", want: 100},
		{input: "1.999", want: 200},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ToMinorUnits(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMinorUnits_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "comma separator", input: "59,90"},
		{name: "negative", input: "-1.00"},
		{name: "plus sign", input: "+1.00"},
		{name: "letters", input: "abc"},
		{name: "two dots", input: "1.2.3"},
		{name: "trailing dot garbage", input: "1.x"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ToMinorUnits(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
		})
	}
}

func TestToDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int64
		want  string
	}{
		{input: 0, want: "0.00"},
		{input: 1, want: "0.01"},
		{input: 10, want: "0.10"},
		{input: 100, want: "1.00"},
		{input: 5990, want: "59.90"},
		{input: 12345, want: "123.45"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ToDisplay(tt.input))
		})
	}
}

func TestRoundTrip_DisplayAndBack(t *testing.T) {
	t.Parallel()

	for _, cents := range []int64{0, 1, 99, 100, 101, 5990, 999999} {
		display := ToDisplay(cents)
		back, err := ToMinorUnits(display)
		require.NoError(t, err, fmt.Sprintf("display %q", display))
		assert.Equal(t, cents, back)
	}
}
