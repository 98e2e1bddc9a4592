package id

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProducesValidUUID(t *testing.T) {
	got := New()
	require.Len(t, got.String(), 36)
	_, err := uuid.Parse(got.String())
	require.NoError(t, err)
}

func TestNew_Unique(t *testing.T) {
	assert.NotEqual(t, New(), New())
}

func TestParse_Valid(t *testing.T) {
	const s = "550e8400-e29b-41d4-a716-446655440000"
	got, err := Parse(s)
	require.NoError(t, err)
	assert.Equal(t, s, got.String())
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "not-a-uuid", "550e8400", "zzze8400-e29b-41d4-a716-446655440000"} {
		_, err := Parse(s)
		require.Error(t, err, "input %q", s)
		assert.ErrorIs(t, err, ErrInvalid)
	}
}

func TestValidate(t *testing.T) {
	valid := New()
	require.NoError(t, valid.Validate())

	// IDs decoded from untrusted JSON bypass Parse; Validate catches them.
	bogus := ID("not-a-uuid")
	assert.Error(t, bogus.Validate())
}

func TestJSON_TransparentString(t *testing.T) {
	original := New()
	data, err := json.Marshal(original)
	require.NoError(t, err)

	// Bare string on the wire: quotes, no wrapper object.
	assert.Equal(t, `"`+original.String()+`"`, string(data))

	var decoded ID
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestJSON_DecodeSkipsValidation(t *testing.T) {
	// Transparent decoding is intentional: validation is the caller's job
	// at trust boundaries (see the import handler).
	var decoded ID
	require.NoError(t, json.Unmarshal([]byte(`"not-a-uuid"`), &decoded))
	assert.Error(t, decoded.Validate())
}
