package multiplayer

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pingpong/internal/config"
)

// Lobby is a hosted game waiting for an opponent.
type Lobby struct {
	Code      string
	Host      SessionHandle
	CreatedAt time.Time
}

// CoordinatorConfig holds configuration for the coordinator.
type CoordinatorConfig struct {
	Game          config.PongConfig // Tuning every match plays with
	LobbyTimeout  time.Duration     // How long a lobby waits for a joiner
	CleanupPeriod time.Duration     // How often expired lobbies are swept
}

// DefaultCoordinatorConfig returns sensible defaults.
func DefaultCoordinatorConfig() CoordinatorConfig {
	return CoordinatorConfig{
		Game:          config.DefaultPongConfig(),
		LobbyTimeout:  2 * time.Minute,
		CleanupPeriod: 30 * time.Second,
	}
}

// ResultSaver persists finished matches.
type ResultSaver interface {
	SaveMatchResult(result MatchResult) error
}

// Coordinator pairs sessions through lobbies and owns the running matches.
// Messages are handled one at a time on the coordinator's goroutine.
type Coordinator struct {
	config   CoordinatorConfig
	sessions *SessionRegistry
	saver    ResultSaver
	logger   *log.Logger

	mu           sync.RWMutex
	lobbies      map[string]*Lobby
	matches      map[MatchID]*Match
	sessionLobby map[SessionID]string
	sessionMatch map[SessionID]MatchID

	msgs     chan CoordinatorMessage
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewCoordinator creates a coordinator. A nil logger discards output.
func NewCoordinator(cfg CoordinatorConfig, sessions *SessionRegistry, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.LobbyTimeout <= 0 {
		cfg.LobbyTimeout = DefaultCoordinatorConfig().LobbyTimeout
	}
	if cfg.CleanupPeriod <= 0 {
		cfg.CleanupPeriod = DefaultCoordinatorConfig().CleanupPeriod
	}
	return &Coordinator{
		config:       cfg,
		sessions:     sessions,
		logger:       logger,
		lobbies:      make(map[string]*Lobby),
		matches:      make(map[MatchID]*Match),
		sessionLobby: make(map[SessionID]string),
		sessionMatch: make(map[SessionID]MatchID),
		msgs:         make(chan CoordinatorMessage, 256),
		done:         make(chan struct{}),
	}
}

// SetResultSaver sets where finished matches are recorded.
func (c *Coordinator) SetResultSaver(saver ResultSaver) {
	c.saver = saver
}

// Start begins processing messages and sweeping expired lobbies.
func (c *Coordinator) Start() {
	go c.processMessages()
	go c.cleanupLoop()
}

// Stop ends every match and stops the coordinator. It waits for the
// matches to report their results.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)

		c.mu.RLock()
		matches := make([]*Match, 0, len(c.matches))
		for _, m := range c.matches {
			matches = append(matches, m)
		}
		c.mu.RUnlock()

		for _, m := range matches {
			m.Stop()
		}
		c.wg.Wait()
	})
}

// Send queues a message for the coordinator.
func (c *Coordinator) Send(msg CoordinatorMessage) {
	select {
	case c.msgs <- msg:
	case <-c.done:
	}
}

func (c *Coordinator) processMessages() {
	for {
		select {
		case msg := <-c.msgs:
			c.handleMessage(msg)
		case <-c.done:
			return
		}
	}
}

func (c *Coordinator) handleMessage(msg CoordinatorMessage) {
	switch m := msg.(type) {
	case CreateLobbyMsg:
		c.handleCreateLobby(m)
	case JoinLobbyMsg:
		c.handleJoinLobby(m)
	case LeaveMsg:
		c.handleLeave(m.SessionID, EndReasonLeft)
	case InputMsg:
		c.handleInput(m)
	case SessionDisconnectedMsg:
		c.handleLeave(m.SessionID, EndReasonDisconnect)
	}
}

func (c *Coordinator) handleCreateLobby(msg CreateLobbyMsg) {
	session, ok := c.sessions.Get(msg.SessionID)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy(msg.SessionID) {
		session.Send(LobbyErrorEvent{Message: "Already in a game"})
		return
	}

	code := c.generateUniqueCode()
	c.lobbies[code] = &Lobby{
		Code:      code,
		Host:      session,
		CreatedAt: time.Now(),
	}
	c.sessionLobby[msg.SessionID] = code

	c.logger.Info("lobby created", "code", code, "host", session.Name())
	session.Send(LobbyCreatedEvent{Code: code})
}

func (c *Coordinator) handleJoinLobby(msg JoinLobbyMsg) {
	session, ok := c.sessions.Get(msg.SessionID)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy(msg.SessionID) {
		session.Send(LobbyErrorEvent{Message: "Already in a game"})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(msg.Code))
	lobby, exists := c.lobbies[code]
	if !exists {
		session.Send(LobbyErrorEvent{Message: "Lobby not found"})
		return
	}

	c.startMatch(lobby, session)
}

// startMatch turns a lobby into a running match. Must hold c.mu.
func (c *Coordinator) startMatch(lobby *Lobby, joiner SessionHandle) {
	select {
	case <-c.done:
		joiner.Send(LobbyErrorEvent{Message: "Server shutting down"})
		return
	default:
	}

	matchID := MatchID(fmt.Sprintf("match-%s-%d", lobby.Code, time.Now().UnixNano()))
	match := NewMatch(matchID, lobby.Code, MatchConfig{
		Game:     c.config.Game.Game(),
		TickRate: c.config.Game.Loop.TickRate,
		Keys:     c.config.Game.KeyTiming(),
		Seed:     time.Now().UnixNano(),
	}, lobby.Host, joiner)

	hostID := lobby.Host.ID()
	delete(c.lobbies, lobby.Code)
	delete(c.sessionLobby, hostID)
	c.matches[matchID] = match
	c.sessionMatch[hostID] = matchID
	c.sessionMatch[joiner.ID()] = matchID

	c.logger.Info("match started", "match", matchID, "left", lobby.Host.Name(), "right", joiner.Name())

	lobby.Host.Send(MatchStartedEvent{MatchID: matchID, Code: lobby.Code, Side: SideLeft, Opponent: joiner.Name()})
	joiner.Send(MatchStartedEvent{MatchID: matchID, Code: lobby.Code, Side: SideRight, Opponent: lobby.Host.Name()})

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		match.Run(c.handleMatchEnded)
	}()
}

// busy reports whether a session already hosts a lobby or plays a match.
// Must hold c.mu.
func (c *Coordinator) busy(id SessionID) bool {
	if _, ok := c.sessionLobby[id]; ok {
		return true
	}
	_, ok := c.sessionMatch[id]
	return ok
}

func (c *Coordinator) handleMatchEnded(result MatchResult) {
	c.mu.Lock()
	delete(c.matches, result.MatchID)
	delete(c.sessionMatch, result.Left.ID())
	delete(c.sessionMatch, result.Right.ID())
	c.mu.Unlock()

	c.logger.Info("match ended",
		"match", result.MatchID,
		"reason", result.Reason.String(),
		"frames", result.Stats.Frames,
		"returns", result.Stats.LeftReturns+result.Stats.RightReturns,
	)

	end := MatchEndedEvent{MatchID: result.MatchID, Reason: result.Reason, Stats: result.Stats}
	result.Left.Send(end)
	result.Right.Send(end)

	if c.saver != nil {
		if err := c.saver.SaveMatchResult(result); err != nil {
			c.logger.Warn("could not save match", "match", result.MatchID, "error", err)
		}
	}
}

// handleLeave closes the session's lobby or ends its match. A lobby only
// holds its host, so closing it notifies nobody.
func (c *Coordinator) handleLeave(id SessionID, reason EndReason) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if code, ok := c.sessionLobby[id]; ok {
		delete(c.sessionLobby, id)
		delete(c.lobbies, code)
		c.logger.Info("lobby closed", "code", code)
		return
	}

	if matchID, ok := c.sessionMatch[id]; ok {
		if match, exists := c.matches[matchID]; exists {
			match.Leave(id, reason)
		}
	}
}

func (c *Coordinator) handleInput(msg InputMsg) {
	c.mu.RLock()
	match, exists := c.matches[msg.MatchID]
	c.mu.RUnlock()

	if !exists {
		return
	}
	match.SendInput(msg.Side, msg.Action)
}

func (c *Coordinator) cleanupLoop() {
	ticker := time.NewTicker(c.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanupExpiredLobbies(time.Now())
		case <-c.done:
			return
		}
	}
}

func (c *Coordinator) cleanupExpiredLobbies(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for code, lobby := range c.lobbies {
		if now.Sub(lobby.CreatedAt) > c.config.LobbyTimeout {
			lobby.Host.Send(LobbyClosedEvent{Code: code, Reason: EndReasonExpired})
			delete(c.sessionLobby, lobby.Host.ID())
			delete(c.lobbies, code)
			c.logger.Info("lobby expired", "code", code)
		}
	}
}

func (c *Coordinator) generateUniqueCode() string {
	for {
		code := generateJoinCode()
		if _, exists := c.lobbies[code]; !exists {
			return code
		}
	}
}

// generateJoinCode creates a 6-character code from the base32 alphabet
// (A-Z, 2-7), which avoids the easily confused 0/O and 1/I.
func generateJoinCode() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%06X", time.Now().UnixNano()&0xFFFFFF)
	}
	return base32.StdEncoding.EncodeToString(b)[:6]
}

// Lobby returns a waiting lobby by code.
func (c *Coordinator) Lobby(code string) (*Lobby, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	l, ok := c.lobbies[strings.ToUpper(code)]
	return l, ok
}

// LobbyCount returns the number of waiting lobbies.
func (c *Coordinator) LobbyCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lobbies)
}

// MatchCount returns the number of running matches.
func (c *Coordinator) MatchCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.matches)
}
