package chat

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"biduk_site/internal/adapters/observability"
	"biduk_site/internal/domain"
	"biduk_site/internal/i18n"
)

var ErrNoSession = errors.New("chat: session not found")

// Store keeps live sessions in memory and drops the ones idle longer than ttl.
type Store struct {
	bot  domain.Chatbot
	cat  *i18n.Catalog
	opts Options
	ttl  time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session

	done chan struct{}
	once sync.Once
}

func NewStore(bot domain.Chatbot, cat *i18n.Catalog, opts Options, ttl time.Duration) *Store {
	st := &Store{
		bot:      bot,
		cat:      cat,
		opts:     opts.withDefaults(),
		ttl:      ttl,
		sessions: map[string]*Session{},
		done:     make(chan struct{}),
	}
	if ttl > 0 {
		go st.janitor(ttl / 2)
	}
	return st
}

func (st *Store) Create(lang i18n.Lang) *Session {
	s := newSession(st.bot, st.cat, lang, st.opts)
	st.mu.Lock()
	st.sessions[s.ID()] = s
	st.mu.Unlock()
	observability.ObserveChat("session")
	return s
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes sessions idle for longer than ttl and returns how many went.
func (st *Store) Sweep(now time.Time) int {
	if st.ttl <= 0 {
		return 0
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for id, s := range st.sessions {
		if now.Sub(s.idleSince()) > st.ttl {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

func (st *Store) janitor(every time.Duration) {
	if every < time.Second {
		every = time.Second
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-st.done:
			return
		case <-t.C:
			if n := st.Sweep(st.opts.Now()); n > 0 {
				log.Debug().Int("expired", n).Msg("chat sessions swept")
			}
		}
	}
}

func (st *Store) Close() {
	st.once.Do(func() { close(st.done) })
}
