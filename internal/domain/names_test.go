package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeRealName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "two words", input: "John Doe", want: true},
		{name: "single letters", input: "j d", want: false},
		{name: "one word", input: "J", want: false},
		{name: "hyphen and apostrophe", input: "Anna-Maria O'Neil", want: true},
		{name: "digits", input: "John 123", want: false},
		{name: "finnish letters", input: "Äijä Ölander", want: true},
		{name: "extra spaces", input: "  Matti   Meikäläinen ", want: true},
		{name: "empty", input: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LooksLikeRealName(tc.input))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "John Doe", NormalizeName("john DOE"))
	assert.Equal(t, "Anna-Maria O'neil", NormalizeName("ANNA-mARIA O'NEIL"))
	assert.Equal(t, "Matti Meikäläinen", NormalizeName("  matti   MEIKÄLÄINEN "))
}

func TestNormalizeNameIsIdempotent(t *testing.T) {
	for _, input := range []string{"john DOE", "ANNA-mARIA O'NEIL", "äijä ölander", "Bob Friend"} {
		once := NormalizeName(input)
		assert.Equal(t, once, NormalizeName(once), input)
	}
}

func TestNormalizeHandle(t *testing.T) {
	got, err := NormalizeHandle("@Alice_99")
	require.NoError(t, err)
	assert.Equal(t, "alice_99", got)

	got, err = NormalizeHandle("  bob_friend ")
	require.NoError(t, err)
	assert.Equal(t, "bob_friend", got)

	rejected := []string{
		"@abcd",
		"abcd",
		strings.Repeat("a", 33),
		"alice-99",
		"alice 99",
		"@@alice99",
		"ällice99",
		"",
	}
	for _, input := range rejected {
		_, err := NormalizeHandle(input)
		assert.ErrorIs(t, err, ErrInvalidHandle, input)
	}

	got, err = NormalizeHandle("@" + strings.Repeat("A", 32))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 32), got)
}

func TestCleanInputComposesCombiningMarks(t *testing.T) {
	decomposed := "kylla\u0308"
	assert.Equal(t, "kyll\u00e4", CleanInput("  "+decomposed+"\n"))
}
