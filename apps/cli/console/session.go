package console

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/user"
)

type State int

// Session states
const (
	StatePrompting State = iota
	StateAuthenticating
	StateInSession
	StateExited
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateAuthenticating:
		return "authenticating"
	case StateInSession:
		return "in session"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Session is the top level login loop.
type Session struct {
	dir          *Directory
	term         *Terminal
	log          core.Logger
	exitSentinel string
	state        State
}

func NewSession(dir *Directory, term *Terminal, conf *core.Config, logger core.Logger) *Session {
	s := &Session{
		dir:          dir,
		term:         term,
		log:          logger,
		exitSentinel: conf.Console.ExitSentinel,
	}
	dir.entered = func(user.Account) { s.state = StateInSession }
	return s
}

func (s *Session) State() State { return s.state }

// Run prompts for credentials until the exit sentinel is entered or the input ends.
func (s *Session) Run(ctx context.Context) error {
	defer func() { s.state = StateExited }()

	for {
		s.state = StatePrompting
		if err := ctx.Err(); err != nil {
			return err
		}

		login, err := s.term.Prompt("\nLogin(" + s.exitSentinel + "=quit): ")
		if err != nil {
			return ignoreEOF(err)
		}
		if login == s.exitSentinel {
			return nil
		}
		pwd, err := s.term.ReadPassword("Password: ")
		if err != nil {
			return ignoreEOF(err)
		}

		s.state = StateAuthenticating
		ok, err := s.dir.Authenticate(ctx, login, pwd)
		if err != nil {
			if err = ignoreEOF(err); err != nil {
				s.log.Error("session failed", err)
			}
			return err
		}
		if !ok {
			s.term.Println("Wrong credentials!")
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
