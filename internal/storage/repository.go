package storage

import (
	"errors"

	"github.com/PranzNi/RPG-NURSE/internal/game"
)

// ErrAccountNotFound is returned when no account exists for a username.
var ErrAccountNotFound = errors.New("account not found")

type Repository interface {
	// CreateAccount inserts a new account row. The username must be
	// unique; violations surface as a driver error.
	CreateAccount(a *game.Account) error
	GetAccountByUsername(username string) (*game.Account, error)
	// SaveGameData replaces the serialized save-game blob for the
	// account. The blob is opaque at this layer.
	SaveGameData(username string, data []byte) error
}
