package redirect

import (
	"testing"

	apperrors "myjobs/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guid = "0123456789ABCDEF0123456789ABCDEF"

func TestParsePath(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		vs    string
		want  Request
		error bool
	}{
		{name: "bare guid", path: "/" + guid, want: Request{GUID: guid}},
		{name: "lowercase guid", path: "/0123456789abcdef0123456789abcdef", want: Request{GUID: guid}},
		{name: "hyphenated guid", path: "/01234567-89ab-cdef-0123-456789abcdef", want: Request{GUID: guid}},
		{name: "view source suffix", path: "/" + guid + "20", want: Request{GUID: guid, ViewSource: 20, HasVS: true}},
		{name: "debug marker", path: "/" + guid + "20+", want: Request{GUID: guid, ViewSource: 20, HasVS: true, Debug: true}},
		{name: "query override", path: "/" + guid + "20", vs: "7", want: Request{GUID: guid, ViewSource: 7, HasVS: true}},
		{name: "too short", path: "/0123", error: true},
		{name: "not hex", path: "/0123456789ABCDEF0123456789ABCDEZ", error: true},
		{name: "non numeric suffix", path: "/" + guid + "abc", error: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.path, tt.vs)
			if tt.error {
				assert.ErrorIs(t, err, apperrors.ErrInvalidGUID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeGUID(t *testing.T) {
	g, err := NormalizeGUID("01234567-89ab-cdef-0123-456789abcdef")
	require.NoError(t, err)
	assert.Equal(t, guid, g)

	_, err = NormalizeGUID("nope")
	assert.ErrorIs(t, err, apperrors.ErrInvalidGUID)
}
