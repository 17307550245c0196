package inmemdb

import (
	"sync"

	"github.com/trezcool/gradebook/core/user"
)

type (
	DB struct {
		account *accountTable
	}

	// accountTable keeps accounts in registration order.
	accountTable struct {
		sync.RWMutex
		rows []user.Account
	}
)

func Open() (*DB, error) {
	db := &DB{
		account: &accountTable{rows: make([]user.Account, 0)},
	}
	return db, nil
}
