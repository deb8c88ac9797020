package service

import (
	"errors"
	"strings"

	"github.com/PranzNi/RPG-NURSE/internal/constants"
	"github.com/PranzNi/RPG-NURSE/internal/game"
	"github.com/PranzNi/RPG-NURSE/internal/logging"
	"github.com/PranzNi/RPG-NURSE/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var (
	ErrUserExists         = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrUsernameRequired   = errors.New("username is required")
)

// NormalizeUsername makes account lookups case-insensitive. Handlers use
// the same form for session keys and token subjects.
func NormalizeUsername(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

// Register creates a new account with a bcrypt password hash and a fresh
// save game, and returns the new player aggregate.
func Register(repo storage.Repository, username, password, displayName string) (*game.Player, error) {
	username = NormalizeUsername(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := repo.GetAccountByUsername(username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, storage.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = username
	}
	p := game.NewPlayer(displayName)
	data, err := p.Encode()
	if err != nil {
		return nil, err
	}

	acct := &game.Account{
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		GameData:     data,
	}
	if err := repo.CreateAccount(acct); err != nil {
		return nil, err
	}
	logging.Info("account registered", logging.Fields{constants.LogFieldUsername: username})
	return p, nil
}

// Login verifies the password and loads the stored save game. A missing or
// unreadable blob yields a fresh player rather than a failed login; the
// next save overwrites the bad blob.
func Login(repo storage.Repository, username, password string) (*game.Player, error) {
	username = NormalizeUsername(username)

	acct, err := repo.GetAccountByUsername(username)
	if errors.Is(err, storage.ErrAccountNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if len(acct.GameData) == 0 {
		return game.NewPlayer(acct.DisplayName), nil
	}
	p, err := game.DecodePlayer(acct.GameData, acct.DisplayName)
	if err != nil {
		logging.Warn("stored save game unreadable, starting fresh", err, logging.Fields{constants.LogFieldUsername: username})
		return game.NewPlayer(acct.DisplayName), nil
	}
	return p, nil
}
