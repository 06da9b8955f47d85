// Package chat implements the travel-assistant conversation: a per-visitor
// session with a reply limit that degrades to a canned contact message.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"biduk_site/internal/adapters/observability"
	"biduk_site/internal/domain"
	"biduk_site/internal/i18n"
)

var (
	ErrEmptyMessage      = errors.New("chat: empty message")
	ErrBusy              = errors.New("chat: awaiting response")
	ErrUnknownQuickReply = errors.New("chat: unknown quick reply")
	ErrNoPendingClear    = errors.New("chat: clear was not requested")
	ErrLanguage          = errors.New("chat: unsupported language")
)

const welcomeID = "1"

type Options struct {
	MaxReplies int           // user turns answered by the bot before degrading
	LimitDelay time.Duration // pause before the canned contact message
	Now        func() time.Time
}

func (o Options) withDefaults() Options {
	if o.MaxReplies <= 0 {
		o.MaxReplies = 3
	}
	if o.LimitDelay < 0 {
		o.LimitDelay = 0
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type Session struct {
	id   string
	bot  domain.Chatbot
	cat  *i18n.Catalog
	opts Options

	mu           sync.Mutex
	lang         i18n.Lang
	messages     []domain.ChatMessage
	replies      int
	limited      bool
	awaiting     bool
	clearPending bool
	gen          uint64 // bumped by every confirmed clear
	lastSeen     time.Time
}

func newSession(bot domain.Chatbot, cat *i18n.Catalog, lang i18n.Lang, opts Options) *Session {
	opts = opts.withDefaults()
	s := &Session{
		id:   "conv_" + uuid.NewString(),
		bot:  bot,
		cat:  cat,
		opts: opts,
		lang: lang,
	}
	s.messages = []domain.ChatMessage{s.welcome()}
	s.lastSeen = opts.Now()
	return s
}

// ID is fixed for the life of the session.
func (s *Session) ID() string { return s.id }

func (s *Session) welcome() domain.ChatMessage {
	return domain.ChatMessage{
		ID:        welcomeID,
		Text:      s.cat.For(s.lang).T("chat.welcome"),
		Sender:    domain.SenderBot,
		Timestamp: s.opts.Now(),
	}
}

func (s *Session) newMessage(text string, from domain.Sender) domain.ChatMessage {
	return domain.ChatMessage{ID: uuid.NewString(), Text: text, Sender: from, Timestamp: s.opts.Now()}
}

// Send runs one user turn with free text and returns the bot message that
// answered it.
func (s *Session) Send(ctx context.Context, text string) (domain.ChatMessage, error) {
	return s.turn(ctx, text, "chat.error")
}

// SendQuickReply runs one user turn with a predefined prompt of the session language.
func (s *Session) SendQuickReply(ctx context.Context, text string) (domain.ChatMessage, error) {
	s.mu.Lock()
	known := false
	for _, q := range quickReplies(s.cat.For(s.lang)) {
		if q == text {
			known = true
			break
		}
	}
	s.mu.Unlock()
	if !known {
		return domain.ChatMessage{}, ErrUnknownQuickReply
	}
	return s.turn(ctx, text, "chat.errorShort")
}

func (s *Session) turn(ctx context.Context, text, errKey string) (domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.awaiting {
		s.mu.Unlock()
		return domain.ChatMessage{}, ErrBusy
	}
	s.messages = append(s.messages, s.newMessage(text, domain.SenderUser))
	s.replies++
	s.awaiting = true
	s.lastSeen = s.opts.Now()
	if s.replies > s.opts.MaxReplies {
		s.limited = true
	}
	limited := s.limited
	gen := s.gen
	lang := s.lang
	s.mu.Unlock()
	observability.ObserveChat("sent")

	if limited {
		observability.ObserveChat("limited")
		sleepCtx(ctx, s.opts.LimitDelay)
		return s.finish(gen, s.cat.For(lang).T("chat.contact"))
	}

	reply, err := s.bot.Reply(ctx, domain.ChatRequest{Message: text, Language: string(lang), SessionID: s.id})
	loc := s.cat.For(lang)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("session_id", s.id).Msg("chatbot request failed")
		observability.ObserveChat("fallback")
		reply = loc.T(errKey)
	case reply == "":
		reply = loc.T("chat.noReply")
	}
	return s.finish(gen, reply)
}

// finish appends the bot reply unless the conversation was cleared meanwhile.
func (s *Session) finish(gen uint64, text string) (domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.newMessage(text, domain.SenderBot)
	if s.gen != gen {
		return msg, nil
	}
	s.messages = append(s.messages, msg)
	s.awaiting = false
	s.lastSeen = s.opts.Now()
	return msg, nil
}

func (s *Session) SetLanguage(code string) error {
	l, ok := i18n.Parse(code)
	if !ok {
		return ErrLanguage
	}
	s.mu.Lock()
	s.lang = l
	s.mu.Unlock()
	return nil
}

// RequestClear opens the confirmation step; nothing is dropped yet.
func (s *Session) RequestClear() {
	s.mu.Lock()
	s.clearPending = true
	s.mu.Unlock()
}

func (s *Session) CancelClear() {
	s.mu.Lock()
	s.clearPending = false
	s.mu.Unlock()
}

// ConfirmClear resets the conversation to the welcome message and lifts the limit.
func (s *Session) ConfirmClear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.clearPending {
		return ErrNoPendingClear
	}
	s.messages = []domain.ChatMessage{s.welcome()}
	s.replies = 0
	s.limited = false
	s.awaiting = false
	s.clearPending = false
	s.gen++
	s.lastSeen = s.opts.Now()
	observability.ObserveChat("cleared")
	return nil
}

type View struct {
	SessionID       string               `json:"session_id"`
	Language        i18n.Lang            `json:"language"`
	Messages        []domain.ChatMessage `json:"messages"`
	UserReplyCount  int                  `json:"user_reply_count"`
	HasReachedLimit bool                 `json:"has_reached_limit"`
	Awaiting        bool                 `json:"awaiting_response"`
	ClearPending    bool                 `json:"clear_pending"`
	Notice          string               `json:"notice,omitempty"`
	QuickReplies    []string             `json:"quick_replies,omitempty"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	loc := s.cat.For(s.lang)
	v := View{
		SessionID:       s.id,
		Language:        s.lang,
		Messages:        append([]domain.ChatMessage(nil), s.messages...),
		UserReplyCount:  s.replies,
		HasReachedLimit: s.limited,
		Awaiting:        s.awaiting,
		ClearPending:    s.clearPending,
	}
	switch {
	case s.limited:
		v.Notice = loc.T("chat.limit")
	case s.replies > 0:
		v.Notice = loc.T("chat.remaining", s.opts.MaxReplies-s.replies, s.opts.MaxReplies)
	}
	if len(s.messages) == 1 {
		v.QuickReplies = quickReplies(loc)
	}
	return v
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func quickReplies(l i18n.Localizer) []string {
	return []string{l.T("chat.quick.1"), l.T("chat.quick.2"), l.T("chat.quick.3"), l.T("chat.quick.4")}
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
