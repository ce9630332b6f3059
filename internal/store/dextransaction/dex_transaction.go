package dextransaction

import (
	"github.com/poolwatch/dex-backend/internal/model"
	"gorm.io/gorm"
)

type store struct{}

func New() IStore {
	return &store{}
}

func (s *store) Create(db *gorm.DB, tx *model.Transaction) (*model.Transaction, error) {
	return tx, db.Create(tx).Error
}

// GetLatest returns the newest transaction by on-chain timestamp.
func (s *store) GetLatest(db *gorm.DB) (*model.Transaction, error) {
	var tx model.Transaction
	return &tx, db.Order("timestamp desc").First(&tx).Error
}

// All returns the full materialized collection, newest first.
func (s *store) All(db *gorm.DB) ([]*model.Transaction, error) {
	txs := []*model.Transaction{}
	err := db.Order("timestamp desc").Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *store) Count(db *gorm.DB) (int64, error) {
	var count int64
	return count, db.Model(&model.Transaction{}).Count(&count).Error
}
