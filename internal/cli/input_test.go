package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Say something\n> ", out.String())
}

func TestGetSimpleText_PartialLineBeforeEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "", io.Discard)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetTextWithDefault(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{"empty keeps default", "\n", "prev@x.com", "prev@x.com"},
		{"entry replaces default", "new@x.com\n", "prev@x.com", "new@x.com"},
		{"no default", "typed\n", "", "typed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := bufio.NewReader(strings.NewReader(tc.input))
			got, err := GetTextWithDefault(r, "Field", tc.def, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetTextWithDefault_ShowsDefaultInPrompt(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\n"))

	_, err := GetTextWithDefault(r, "Email Address", "prev@x.com", &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Email Address [prev@x.com]")
}

func TestGetOTP_FiltersAtEntryTime(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("12-34 56 789\n"))

	got, err := GetOTP(r, "", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "123456", got)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("secret1"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword("Password", &out)
	require.NoError(t, err)
	assert.Equal(t, "secret1", got)
	assert.Contains(t, out.String(), "Password: ")
}
