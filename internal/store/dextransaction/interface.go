package dextransaction

import (
	"github.com/poolwatch/dex-backend/internal/model"
	"gorm.io/gorm"
)

type IStore interface {
	Create(db *gorm.DB, tx *model.Transaction) (*model.Transaction, error)
	GetLatest(db *gorm.DB) (*model.Transaction, error)
	All(db *gorm.DB) ([]*model.Transaction, error)
	Count(db *gorm.DB) (int64, error)
}
