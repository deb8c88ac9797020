package storage

import (
	"errors"

	"github.com/PranzNi/RPG-NURSE/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateAccount(a *game.Account) error {
	return r.db.Create(a).Error
}

func (r *sqliteRepository) GetAccountByUsername(username string) (*game.Account, error) {
	var a game.Account
	err := r.db.Where("username = ?", username).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *sqliteRepository) SaveGameData(username string, data []byte) error {
	res := r.db.Model(&game.Account{}).Where("username = ?", username).Update("game_data", data)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
