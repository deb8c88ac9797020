package service

import (
	"sync"
	"time"

	"github.com/PranzNi/RPG-NURSE/internal/constants"
	"github.com/PranzNi/RPG-NURSE/internal/game"
	"github.com/PranzNi/RPG-NURSE/internal/logging"
	"github.com/PranzNi/RPG-NURSE/internal/storage"
)

// DefaultSaveDelay is the quiet period before a scheduled save is written.
const DefaultSaveDelay = 2 * time.Second

// Saver debounces save-game writes per account. Schedule snapshots the
// player immediately and writes after the quiet period; rapid successive
// schedules coalesce into one write carrying the latest snapshot. Writes
// are fire-and-forget: failures are logged and the data stays pending only
// until the next schedule.
type Saver struct {
	repo  storage.Repository
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
}

type pendingSave struct {
	timer *time.Timer
	data  []byte
}

func NewSaver(repo storage.Repository, delay time.Duration) *Saver {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	return &Saver{repo: repo, delay: delay, pending: make(map[string]*pendingSave)}
}

// Schedule queues a debounced save of the player's current state. The
// snapshot is taken here, so the caller may keep mutating the player
// afterwards. Call with the session lock held.
func (s *Saver) Schedule(username string, p *game.Player) {
	data, err := p.Encode()
	if err != nil {
		logging.Warn("failed to encode save game", err, logging.Fields{constants.LogFieldUsername: username})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ps, ok := s.pending[username]; ok {
		ps.data = data
		ps.timer.Reset(s.delay)
		return
	}
	ps := &pendingSave{data: data}
	ps.timer = time.AfterFunc(s.delay, func() { s.flush(username) })
	s.pending[username] = ps
}

// SaveNow writes the player's current state immediately, superseding any
// pending debounced write. Used for explicit saves and logout.
func (s *Saver) SaveNow(username string, p *game.Player) error {
	data, err := p.Encode()
	if err != nil {
		return err
	}
	s.mu.Lock()
	if ps, ok := s.pending[username]; ok {
		ps.timer.Stop()
		delete(s.pending, username)
	}
	s.mu.Unlock()
	return s.repo.SaveGameData(username, data)
}

func (s *Saver) flush(username string) {
	s.mu.Lock()
	ps, ok := s.pending[username]
	if ok {
		delete(s.pending, username)
	}
	s.mu.Unlock()
	if !ok {
		return
	}
	if err := s.repo.SaveGameData(username, ps.data); err != nil {
		logging.Warn("debounced save failed", err, logging.Fields{constants.LogFieldUsername: username})
	}
}
