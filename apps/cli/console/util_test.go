package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/trezcool/gradebook/core/user"
	"github.com/trezcool/gradebook/tests"
)

func ctxBackground() context.Context { return context.Background() }

func newTestTerminal(input string) (*Terminal, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return NewTerminal(strings.NewReader(input), out, true), out
}

// setup seeds the default roster: alice, bob, tina, paul.
func setup(t *testing.T, input string, matchAll bool, accounts ...user.Account) (*Session, *bytes.Buffer, *testutil.Logger) {
	t.Helper()
	svc, logger := testutil.NewUserService(t, matchAll)
	if len(accounts) == 0 {
		if err := svc.Seed(ctxBackground(), user.DefaultRoster()); err != nil {
			t.Fatalf("Seed() failed: %v", err)
		}
	} else {
		testutil.Register(t, svc, accounts...)
	}
	term, out := newTestTerminal(input)
	dir := NewDirectory(svc, term, logger)
	return NewSession(dir, term, testutil.Config(matchAll), logger), out, logger
}
