package service

import (
	"sync"
	"testing"

	"github.com/PranzNi/RPG-NURSE/internal/game"
	"github.com/PranzNi/RPG-NURSE/internal/storage"
)

type mockRepo struct {
	mu       sync.Mutex
	accounts map[string]*game.Account
	saves    map[string][][]byte
	saveErr  error
}

func newMockRepo() *mockRepo {
	return &mockRepo{accounts: map[string]*game.Account{}, saves: map[string][][]byte{}}
}

func (m *mockRepo) CreateAccount(a *game.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[a.Username] = a
	return nil
}

func (m *mockRepo) GetAccountByUsername(username string) (*game.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.accounts[username]; ok {
		return a, nil
	}
	return nil, storage.ErrAccountNotFound
}

func (m *mockRepo) SaveGameData(username string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves[username] = append(m.saves[username], data)
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	mr := newMockRepo()

	p, err := Register(mr, "Nurse.Joy", "secret99", "Nurse Joy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Level != 1 || p.Gold != game.InitialGold {
		t.Fatalf("expected a fresh player, got level %d gold %d", p.Level, p.Gold)
	}
	acct, ok := mr.accounts["nurse.joy"]
	if !ok {
		t.Fatalf("expected account stored under the normalized username, got %v", mr.accounts)
	}
	if acct.PasswordHash == "secret99" || acct.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if len(acct.GameData) == 0 {
		t.Fatalf("expected an initial save game blob")
	}

	loaded, err := Login(mr, "NURSE.JOY", "secret99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Name != "Nurse Joy" {
		t.Fatalf("expected display name preserved, got %q", loaded.Name)
	}
}

func TestRegister_Validation(t *testing.T) {
	mr := newMockRepo()

	if _, err := Register(mr, "   ", "secret99", ""); err != ErrUsernameRequired {
		t.Fatalf("expected ErrUsernameRequired, got %v", err)
	}
	if _, err := Register(mr, "joy", "short", ""); err != ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if _, err := Register(mr, "joy", "secret99", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Register(mr, "Joy", "other-pass", ""); err != ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	mr := newMockRepo()
	if _, err := Register(mr, "joy", "secret99", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := Login(mr, "joy", "wrong-pass"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := Login(mr, "nobody", "secret99"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestLogin_CorruptSaveFallsBackToFreshPlayer(t *testing.T) {
	mr := newMockRepo()
	if _, err := Register(mr, "joy", "secret99", "Joy"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mr.accounts["joy"].GameData = []byte("{not json")

	p, err := Login(mr, "joy", "secret99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Level != 1 || p.Name != "Joy" {
		t.Fatalf("expected a fresh player for a corrupt blob, got %+v", p)
	}
}
