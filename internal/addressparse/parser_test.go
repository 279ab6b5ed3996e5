package addressparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("123 N Main St., Apt #4, New York, NY 10001-1234")

	kinds := make([]TokenKind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []TokenKind{
		TokenNumber, TokenDirectional, TokenWord, TokenStreetSuffix, TokenComma,
		TokenUnit, TokenHash, TokenNumber, TokenComma, TokenState, TokenComma, TokenState, TokenZip,
	}, kinds)
	assert.Equal(t, "NY", tokens[9].Value)
}

func TestTokenizePOBoxAndOrdinals(t *testing.T) {
	tokens := Tokenize("P.O. Box 77 on 5th")
	require.Len(t, tokens, 4)
	assert.Equal(t, TokenPOBox, tokens[0].Kind)
	assert.Equal(t, TokenNumber, tokens[1].Kind)
	assert.Equal(t, TokenOrdinal, tokens[3].Kind)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Address
		isAddr  bool
		minimum float64
	}{
		{
			name:    "full street address",
			input:   "123 Main St, Indianapolis, IN 46204",
			want:    Address{Number: "123", Street: "Main St", City: "Indianapolis", State: "IN", Zip: "46204"},
			isAddr:  true,
			minimum: 0.9,
		},
		{
			name:    "unit and directional",
			input:   "500 Ocean Ave SW Suite 200, Santa Monica, California 90401",
			want:    Address{Number: "500", Street: "Ocean Ave SW", Unit: "Ste 200", City: "Santa Monica", State: "CA", Zip: "90401"},
			isAddr:  true,
			minimum: 0.95,
		},
		{
			name:    "po box",
			input:   "PO Box 123, Austin, TX 78701",
			want:    Address{POBox: "123", City: "Austin", State: "TX", Zip: "78701"},
			isAddr:  true,
			minimum: 0.7,
		},
		{
			name:   "city and state only",
			input:  "Indianapolis, IN",
			want:   Address{City: "Indianapolis", State: "IN"},
			isAddr: false,
		},
		{
			name:   "plain job title",
			input:  "Senior Software Engineer",
			isAddr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.input)
			assert.Equal(t, tt.want, res.Address)
			assert.Equal(t, tt.isAddr, res.Score >= Threshold, "score %.2f features %v", res.Score, res.Features)
			if tt.minimum > 0 {
				assert.GreaterOrEqual(t, res.Score, tt.minimum)
			}
		})
	}
}

func TestParsePenalties(t *testing.T) {
	res := Parse("@@ 123 Main St !! 46204")
	assert.Less(t, res.Features["unknown_symbols"], 0.0)

	res = Parse("")
	assert.Equal(t, 0.0, res.Score)
	assert.False(t, LooksLikeAddress(""))
}

func TestLooksLikeAddress(t *testing.T) {
	assert.True(t, LooksLikeAddress("1600 Pennsylvania Ave NW, Washington, DC 20500"))
	assert.False(t, LooksLikeAddress("Washington, DC"))
}
