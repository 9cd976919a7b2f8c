package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/secret"
	"github.com/MKhiriev/go-task-keeper/models"
)

// Config configures a [MemoryStore]. The seed maps allow tests and callers
// to construct a store with pre-existing state; nil seeds start empty.
type Config struct {
	// CryptOptions are the (possibly partial) hashing overrides. They are
	// validated and merged onto defaults at construction time.
	CryptOptions secret.Options

	// SessionTimeout is how long a session stays valid after creation or
	// refresh. Zero means sessions never expire.
	SessionTimeout time.Duration

	// Users seeds the user table, keyed by user name.
	Users map[string]models.User

	// Sessions seeds the session table, keyed by session ID.
	Sessions map[string]models.Session

	// Content seeds the content table, keyed by owner user ID.
	Content map[string][]models.Content

	// Now overrides the clock. Nil means time.Now. Tests use this to drive
	// session expiry deterministically.
	Now func() time.Time
}

// MemoryStore is the in-memory implementation of [IdentityStore] and
// [ContentStore]. All state lives behind one mutex for the lifetime of the
// store object; there is no ambient global state and no persistence.
//
// Expired sessions are never swept: the per-session deadline is a logical
// one, checked lazily on the next access.
type MemoryStore struct {
	logger *logger.Logger

	cryptOptions   secret.Options
	sessionTimeout time.Duration
	now            func() time.Time

	mu        sync.RWMutex
	users     map[string]models.User      // keyed by user name
	usersByID map[string]string           // user ID -> user name
	sessions  map[string]models.Session   // keyed by session ID
	content   map[string][]models.Content // keyed by owner user ID
}

// NewMemoryStore constructs a memory store from cfg.
//
// Malformed crypt options are a misuse of the API rather than a runtime
// condition, so they fail construction synchronously instead of being
// deferred to the first hashing call.
func NewMemoryStore(cfg Config, logger *logger.Logger) (*MemoryStore, error) {
	opts, err := secret.CheckOptions(cfg.CryptOptions)
	if err != nil {
		return nil, err
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	s := &MemoryStore{
		logger:         logger,
		cryptOptions:   opts,
		sessionTimeout: cfg.SessionTimeout,
		now:            now,
		users:          make(map[string]models.User, len(cfg.Users)),
		usersByID:      make(map[string]string, len(cfg.Users)),
		sessions:       make(map[string]models.Session, len(cfg.Sessions)),
		content:        make(map[string][]models.Content, len(cfg.Content)),
	}

	for name, user := range cfg.Users {
		s.users[name] = user
		s.usersByID[user.ID] = name
	}
	for id, session := range cfg.Sessions {
		s.sessions[id] = session
	}
	for userID, entries := range cfg.Content {
		s.content[userID] = append([]models.Content(nil), entries...)
	}

	logger.Debug().
		Int("users", len(s.users)).
		Int("sessions", len(s.sessions)).
		Msg("memory store created")

	return s, nil
}
