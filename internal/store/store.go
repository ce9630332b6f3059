package store

import (
	"github.com/poolwatch/dex-backend/internal/store/dextransaction"
)

type Store struct {
	DexTransaction dextransaction.IStore
}

func New() *Store {
	return &Store{
		DexTransaction: dextransaction.New(),
	}
}
