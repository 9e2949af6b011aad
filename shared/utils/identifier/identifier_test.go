package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore-backend/shared/utils/apperrors"
)

func TestNew_ProducesUniqueIdentifiers(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()

	require.Len(t, a, ByteLength)
	require.Len(t, b, ByteLength)
	assert.NotEqual(t, a, b)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	id := New()

	encoded, err := Encode(id)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestDecode_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "not a uuid", input: "not-a-uuid"},
		{name: "truncated", input: "a81bc81b-dead-4e5d-abff"},
		{name: "bad characters", input: "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidIdentifier)
		})
	}
}

func TestEncode_WrongLength(t *testing.T) {
	t.Parallel()

	_, err := Encode([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidIdentifier)
}
