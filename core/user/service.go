package user

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/grade"
)

var (
	// errors
	ErrNotFound           = errors.New("account not found")
	ErrInvalidCredentials = errors.New("wrong credentials")
	ErrUnknownStudent     = errors.New("unknown student")
)

type (
	// Repository is the Directory storage: accounts in registration order.
	Repository interface {
		CreateAccount(ctx context.Context, acc Account) error
		QueryAllAccounts(ctx context.Context) ([]Account, error)
		GetStudentByLogin(ctx context.Context, login string) (*Student, error)
	}

	Service struct {
		repo     Repository
		log      core.Logger
		matchAll bool
	}
)

func NewService(repo Repository, conf *core.Config, logger core.Logger) *Service {
	return &Service{
		repo:     repo,
		log:      logger,
		matchAll: conf.Console.MatchAll,
	}
}

// Register appends acc to the Directory. Logins are not checked for uniqueness.
func (svc *Service) Register(ctx context.Context, acc Account) error {
	return svc.repo.CreateAccount(ctx, acc)
}

// Authenticate returns the accounts matching the credentials, in registration order.
// Unless the service matches all accounts, only the first match is returned.
func (svc *Service) Authenticate(ctx context.Context, login, password string) ([]Account, error) {
	accounts, err := svc.repo.QueryAllAccounts(ctx)
	if err != nil {
		return nil, err
	}
	var matches []Account
	for _, acc := range accounts {
		if !acc.Authenticate(login, password) {
			continue
		}
		matches = append(matches, acc)
		if !svc.matchAll {
			break
		}
	}
	if len(matches) == 0 {
		return nil, ErrInvalidCredentials
	}
	return matches, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Account, error) {
	return svc.repo.QueryAllAccounts(ctx)
}

// RoleCounts returns the number of registered accounts per role.
func (svc *Service) RoleCounts(ctx context.Context) (map[Role]int, error) {
	accounts, err := svc.repo.QueryAllAccounts(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[Role]int, len(AllRoles))
	for _, acc := range accounts {
		counts[acc.Role()]++
	}
	return counts, nil
}

// Seed validates the roster and registers students, then teachers, then parents.
func (svc *Service) Seed(ctx context.Context, roster RosterConfig) error {
	if err := roster.Validate(); err != nil {
		return err
	}

	for _, ss := range roster.Students {
		for _, g := range ss.Grades {
			if !grade.Valid(g) {
				svc.log.Warn("dropping out of range grade", map[string]interface{}{"student": ss.Login, "grade": g})
			}
		}
		if err := svc.Register(ctx, NewStudent(ss.Login, ss.Password, ss.Grades...)); err != nil {
			return errors.Wrapf(err, "registering student %q", ss.Login)
		}
	}

	for _, ts := range roster.Teachers {
		students := make([]*Student, 0, len(ts.Students))
		for _, login := range ts.Students {
			s, err := svc.repo.GetStudentByLogin(ctx, login)
			if err != nil {
				return errors.Wrapf(ErrUnknownStudent, "teacher %q: %q", ts.Login, login)
			}
			students = append(students, s)
		}
		if err := svc.Register(ctx, NewTeacher(ts.Login, ts.Password, students...)); err != nil {
			return errors.Wrapf(err, "registering teacher %q", ts.Login)
		}
	}

	for _, ps := range roster.Parents {
		child, err := svc.repo.GetStudentByLogin(ctx, ps.Child)
		if err != nil {
			return errors.Wrapf(ErrUnknownStudent, "parent %q: %q", ps.Login, ps.Child)
		}
		if err := svc.Register(ctx, NewParent(ps.Login, ps.Password, child)); err != nil {
			return errors.Wrapf(err, "registering parent %q", ps.Login)
		}
	}
	return nil
}
