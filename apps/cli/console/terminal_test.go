package console

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_Token(t *testing.T) {
	term, _ := newTestTerminal("alice 123\n\n   \n  bob\t456  \nlast")

	var got []string
	for {
		tok, err := term.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, tok)
	}
	assert.Equal(t, []string{"alice", "123", "bob", "456", "last"}, got)
}

func TestTerminal_ReadInt(t *testing.T) {
	term, out := newTestTerminal("7\nabc\n-2 12\n")

	tests := []struct {
		want   int
		wantOk bool
	}{
		{want: 7, wantOk: true},
		{want: 0, wantOk: false},
		{want: -2, wantOk: true},
		{want: 12, wantOk: true},
	}
	for _, tt := range tests {
		n, ok, err := term.ReadInt("> ")
		require.NoError(t, err)
		assert.Equal(t, tt.wantOk, ok)
		assert.Equal(t, tt.want, n)
	}
	_, _, err := term.ReadInt("> ")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "> > > > > ", out.String())
}

func TestTerminal_Pause(t *testing.T) {
	term, out := newTestTerminal("1 leftover tokens\n\n2\n")

	tok, err := term.Token()
	require.NoError(t, err)
	assert.Equal(t, "1", tok)

	// drops "leftover tokens" then waits for the empty line
	require.NoError(t, term.Pause())
	tok, err = term.Token()
	require.NoError(t, err)
	assert.Equal(t, "2", tok)
	assert.Equal(t, "Press Enter to continue...", out.String())

	assert.Equal(t, io.EOF, term.Pause())
}

func TestTerminal_ReadPassword(t *testing.T) {
	origReadPassword := readPasswordFunc
	t.Cleanup(func() { readPasswordFunc = origReadPassword })

	tests := []struct {
		name     string
		input    string
		isTTY    bool
		mask     bool
		password []byte
		pwdErr   error
		want     string
		wantErr  error
		wantOut  string
	}{
		{name: "not a terminal", input: "s3cret\n", mask: true, want: "s3cret", wantOut: "Password: "},
		{name: "terminal", isTTY: true, mask: true, password: []byte("s3cret"), want: "s3cret", wantOut: "Password: \n"},
		{name: "terminal, mask disabled", input: "plain\n", isTTY: true, want: "plain", wantOut: "Password: "},
		{name: "terminal, empty", isTTY: true, mask: true, password: []byte(""), want: "", wantOut: "Password: \n"},
		{name: "terminal, error", isTTY: true, mask: true, pwdErr: errors.New("tty gone"), wantErr: errors.New("tty gone"), wantOut: "Password: \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readPasswordFunc = func(fd int) ([]byte, error) {
				return tt.password, tt.pwdErr
			}
			term, out := newTestTerminal(tt.input)
			term.isTTY = tt.isTTY
			term.mask = tt.mask

			got, err := term.ReadPassword("Password: ")
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestTerminal_ReadPassword_PendingTokenOnTerminal(t *testing.T) {
	origReadPassword := readPasswordFunc
	t.Cleanup(func() { readPasswordFunc = origReadPassword })
	readPasswordFunc = func(int) ([]byte, error) {
		t.Fatal("password already typed on the login line")
		return nil, nil
	}

	term, _ := newTestTerminal("alice 123\n")
	term.isTTY = true
	login, err := term.Token()
	require.NoError(t, err)
	pwd, err := term.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "alice", login)
	assert.Equal(t, "123", pwd)
}
