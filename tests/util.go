package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/user"
	"github.com/trezcool/gradebook/storage/database/inmem"
)

// Logger records log lines instead of printing them.
type Logger struct {
	mu    sync.Mutex
	Lines []string
}

var _ core.Logger = (*Logger)(nil)

func (l *Logger) record(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rendered := make([]interface{}, 0, len(args))
	for _, arg := range args {
		if acc, ok := arg.(user.Account); ok {
			arg = acc.Login() + "(" + acc.Role().String() + ")"
		}
		rendered = append(rendered, arg)
	}
	l.Lines = append(l.Lines, fmt.Sprintf("%s %s %v", level, msg, rendered))
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.record("DEBUG", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.record("INFO", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.record("WARN", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.record("ERROR", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) { l.record("FATAL", msg, args) }

func Config(matchAll bool) *core.Config {
	return &core.Config{
		Env:     "TEST",
		AppName: "Gradebook",
		Console: core.ConsoleConfig{
			ExitSentinel: "exit",
			MatchAll:     matchAll,
		},
	}
}

// NewUserService returns a service over an empty in-memory Directory.
func NewUserService(t *testing.T, matchAll bool) (*user.Service, *Logger) {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	logger := new(Logger)
	return user.NewService(inmemdb.NewAccountRepository(db), Config(matchAll), logger), logger
}

func Register(t *testing.T, svc *user.Service, accounts ...user.Account) {
	t.Helper()
	for _, acc := range accounts {
		if err := svc.Register(context.Background(), acc); err != nil {
			t.Fatalf("Register(%s) failed: %v", acc.Login(), err)
		}
	}
}
