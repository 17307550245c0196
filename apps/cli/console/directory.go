package console

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/user"
)

// Directory resolves credentials to accounts and hands the terminal to their views.
type Directory struct {
	svc     *user.Service
	term    *Terminal
	log     core.Logger
	entered func(acc user.Account) // called before each view runs
}

func NewDirectory(svc *user.Service, term *Terminal, logger core.Logger) *Directory {
	return &Directory{svc: svc, term: term, log: logger}
}

func (d *Directory) Register(ctx context.Context, acc user.Account) error {
	return d.svc.Register(ctx, acc)
}

// Authenticate runs the view of every account matching the credentials, in
// registration order (only the first one unless the service matches all).
// It reports false when nothing matched.
func (d *Directory) Authenticate(ctx context.Context, login, password string) (bool, error) {
	accounts, err := d.svc.Authenticate(ctx, login, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			d.log.Info("login failed", map[string]interface{}{"login": login})
			return false, nil
		}
		return false, err
	}

	for _, acc := range accounts {
		view, err := NewView(acc)
		if err != nil {
			return true, err
		}
		sessionID := uuid.New().String()
		d.log.Info("session opened", acc, map[string]interface{}{"session": sessionID})
		if d.entered != nil {
			d.entered(acc)
		}
		err = view.Interact(ctx, d.term)
		d.log.Info("session closed", acc, map[string]interface{}{"session": sessionID})
		if err != nil {
			return true, err
		}
	}
	return true, nil
}
