package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

var readPasswordFunc = term.ReadPassword // mockable

// Terminal reads whitespace separated tokens from a line oriented input
// and writes prompts and results to an output.
type Terminal struct {
	in      *bufio.Reader
	out     io.Writer
	fd      int
	isTTY   bool
	mask    bool
	pending []string // tokens left on the last line read
}

// NewTerminal wraps in and out. Passwords are read without echo when mask is
// set and in is an interactive terminal.
func NewTerminal(in io.Reader, out io.Writer, mask bool) *Terminal {
	t := &Terminal{
		in:   bufio.NewReader(in),
		out:  out,
		fd:   -1,
		mask: mask,
	}
	if f, ok := in.(*os.File); ok {
		t.fd = int(f.Fd())
		t.isTTY = term.IsTerminal(t.fd)
	}
	return t
}

func (t *Terminal) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.out, format, args...)
}

func (t *Terminal) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(t.out, args...)
}

func (t *Terminal) Print(args ...interface{}) {
	_, _ = fmt.Fprint(t.out, args...)
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

// Token returns the next whitespace separated token, reading lines as needed.
func (t *Terminal) Token() (string, error) {
	for len(t.pending) == 0 {
		line, err := t.readLine()
		if err != nil {
			return "", err
		}
		t.pending = strings.Fields(line)
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, nil
}

// Prompt prints msg and reads one token.
func (t *Terminal) Prompt(msg string) (string, error) {
	t.Print(msg)
	return t.Token()
}

// ReadInt prints msg and reads one token as an integer.
// ok is false when the token is not a number.
func (t *Terminal) ReadInt(msg string) (n int, ok bool, err error) {
	tok, err := t.Prompt(msg)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(tok)
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// ReadPassword prints msg and reads one token, without echo on an interactive terminal.
func (t *Terminal) ReadPassword(msg string) (string, error) {
	if !t.mask || !t.isTTY || len(t.pending) > 0 {
		return t.Prompt(msg)
	}
	t.Print(msg)
	pwd, err := readPasswordFunc(t.fd)
	t.Println()
	if err != nil {
		return "", err
	}
	fields := strings.Fields(string(pwd))
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], nil
}

// Pause drops what is left of the current line and waits for Enter.
func (t *Terminal) Pause() error {
	t.Print("Press Enter to continue...")
	t.pending = nil
	_, err := t.readLine()
	return err
}
