package inmemdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradebook/core/user"
)

func setup(t *testing.T) user.Repository {
	db, err := Open()
	require.NoError(t, err)
	return NewAccountRepository(db)
}

func TestAccountRepository_KeepsRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	repo := setup(t)

	alice := user.NewStudent("alice", "123")
	tina := user.NewTeacher("tina", "teach", alice)
	paul := user.NewParent("paul", "parent", alice)
	dup := user.NewStudent("alice", "123")
	for _, acc := range []user.Account{alice, tina, paul, dup} {
		require.NoError(t, repo.CreateAccount(ctx, acc))
	}

	accounts, err := repo.QueryAllAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []user.Account{alice, tina, paul, dup}, accounts)
}

func TestAccountRepository_QueryAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := setup(t)
	require.NoError(t, repo.CreateAccount(ctx, user.NewStudent("alice", "123")))

	accounts, err := repo.QueryAllAccounts(ctx)
	require.NoError(t, err)
	accounts[0] = nil

	accounts, err = repo.QueryAllAccounts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, accounts[0])
}

func TestAccountRepository_GetStudentByLogin(t *testing.T) {
	ctx := context.Background()
	repo := setup(t)

	alice := user.NewStudent("alice", "123")
	require.NoError(t, repo.CreateAccount(ctx, user.NewTeacher("bob", "teach")))
	require.NoError(t, repo.CreateAccount(ctx, alice))
	require.NoError(t, repo.CreateAccount(ctx, user.NewStudent("alice", "other")))

	tests := []struct {
		name    string
		login   string
		want    *user.Student
		wantErr error
	}{
		{name: "first student wins", login: "alice", want: alice},
		{name: "not a student", login: "bob", wantErr: user.ErrNotFound},
		{name: "unknown", login: "ghost", wantErr: user.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetStudentByLogin(ctx, tt.login)
			assert.Equal(t, tt.wantErr, err)
			assert.Same(t, tt.want, got)
		})
	}
}
