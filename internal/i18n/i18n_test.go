package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "fi", want: "fi", wantOK: true},
		{input: "en", want: "en", wantOK: true},
		{input: " FI ", want: "fi", wantOK: true},
		{input: "xx", wantOK: false},
		{input: "XX", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ParseLanguage(tc.input)
		assert.Equal(t, tc.wantOK, ok, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		lang    string
		input   string
		wantOK  bool
		wantYes bool
	}{
		{lang: "en", input: "yes", wantOK: true, wantYes: true},
		{lang: "en", input: "N", wantOK: true, wantYes: false},
		{lang: "fi", input: "kyllä", wantOK: true, wantYes: true},
		{lang: "fi", input: "joo", wantOK: true, wantYes: true},
		{lang: "fi", input: "ei", wantOK: true, wantYes: false},
		{lang: "fi", input: "yes", wantOK: true, wantYes: true},
		{lang: "en", input: "kyllä", wantOK: false},
		{lang: "en", input: "maybe", wantOK: false},
	}
	for _, tc := range tests {
		yes, ok := ParseYesNo(tc.lang, tc.input)
		assert.Equal(t, tc.wantOK, ok, "%s/%s", tc.lang, tc.input)
		assert.Equal(t, tc.wantYes, yes, "%s/%s", tc.lang, tc.input)
	}
}

func TestIsCancelAvec(t *testing.T) {
	assert.True(t, IsCancelAvec("en", "none"))
	assert.True(t, IsCancelAvec("en", "Remove"))
	assert.True(t, IsCancelAvec("fi", "ei"))
	assert.True(t, IsCancelAvec("fi", "poista"))
	assert.False(t, IsCancelAvec("en", "keep"))
	assert.False(t, IsCancelAvec("fi", "none"))
}

func TestIsSkip(t *testing.T) {
	assert.True(t, IsSkip("skip"))
	assert.True(t, IsSkip(" OHITA "))
	assert.False(t, IsSkip("@skipper"))
}

func TestTFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Please answer yes or no.", T("sv", AnswerYesNo))
	assert.Equal(t, "Broadcast done. Sent: 3, failed: 1", T("en", BroadcastDone, 3, 1))
	assert.Equal(t, "Lähetys valmis. Onnistui: 2, epäonnistui: 0", T("fi", BroadcastDone, 2, 0))
}

func TestLabelsLocalize(t *testing.T) {
	assert.Equal(t, "Change +1 name", ChangeAvecLabel("en"))
	assert.Equal(t, "Remove signup", RemoveSignupLabel("en"))
	assert.Equal(t, "Vaihda avecin nimi", ChangeAvecLabel("fi"))
	assert.Equal(t, "Peru ilmoittautuminen", RemoveSignupLabel("fi"))
	assert.Equal(t, "Export CSV", ExportLabel("en"))
	assert.Equal(t, "Vie CSV", ExportLabel("fi"))
	assert.Equal(t, "Broadcast", BroadcastLabel("en"))
	assert.Equal(t, "Lähetä kaikille", BroadcastLabel("fi"))
}
