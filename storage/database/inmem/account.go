package inmemdb

import (
	"context"

	"github.com/trezcool/gradebook/core/user"
)

type accountRepository struct {
	db *accountTable
}

var _ user.Repository = (*accountRepository)(nil) // interface compliance check

func NewAccountRepository(db *DB) user.Repository {
	return &accountRepository{db: db.account}
}

func (repo *accountRepository) CreateAccount(_ context.Context, acc user.Account) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.rows = append(repo.db.rows, acc)
	return nil
}

func (repo *accountRepository) QueryAllAccounts(_ context.Context) ([]user.Account, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	accounts := make([]user.Account, len(repo.db.rows))
	copy(accounts, repo.db.rows)
	return accounts, nil
}

// GetStudentByLogin returns the first registered student with that login.
func (repo *accountRepository) GetStudentByLogin(_ context.Context, login string) (*user.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, acc := range repo.db.rows {
		if s, ok := acc.(*user.Student); ok && s.Login() == login {
			return s, nil
		}
	}
	return nil, user.ErrNotFound
}
