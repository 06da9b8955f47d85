package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"biduk_site/internal/chat"
	"biduk_site/internal/domain"
	"biduk_site/internal/i18n"
)

const maxChatBody = 16 << 10

type chatInput struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

type chatTurn struct {
	Reply   domain.ChatMessage `json:"reply"`
	Session chat.View          `json:"session"`
}

func readChatInput(w http.ResponseWriter, r *http.Request, required bool) (chatInput, bool) {
	var in chatInput
	err := json.NewDecoder(io.LimitReader(r.Body, maxChatBody)).Decode(&in)
	if errors.Is(err, io.EOF) && !required {
		return in, true
	}
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected a JSON object")
		return in, false
	}
	return in, true
}

// session resolves {id}; on failure the problem response is already written.
func (h *Handlers) session(w http.ResponseWriter, r *http.Request) (*chat.Session, bool) {
	s, err := h.Chat.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "chat session not found")
		return nil, false
	}
	return s, true
}

func writeChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		writeProblem(w, http.StatusBadRequest, "Empty message", err.Error())
	case errors.Is(err, chat.ErrUnknownQuickReply):
		writeProblem(w, http.StatusBadRequest, "Unknown quick reply", err.Error())
	case errors.Is(err, chat.ErrLanguage):
		writeProblem(w, http.StatusBadRequest, "Unsupported language", err.Error())
	case errors.Is(err, chat.ErrBusy):
		writeProblem(w, http.StatusConflict, "Busy", err.Error())
	case errors.Is(err, chat.ErrNoPendingClear):
		writeProblem(w, http.StatusConflict, "Clear not requested", err.Error())
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

func (h *Handlers) createChat(w http.ResponseWriter, r *http.Request) {
	in, ok := readChatInput(w, r, false)
	if !ok {
		return
	}
	lang := i18n.FromContext(r.Context()).Lang()
	if in.Language != "" {
		l, ok := i18n.Parse(in.Language)
		if !ok {
			writeChatError(w, chat.ErrLanguage)
			return
		}
		lang = l
	}
	s := h.Chat.Create(lang)
	w.Header().Set("Location", "/api/chat/sessions/"+s.ID())
	writeJSON(w, r, http.StatusCreated, s.View())
}

func (h *Handlers) getChat(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, s.View())
}

func (h *Handlers) deleteChat(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.session(w, r); !ok {
		return
	}
	h.Chat.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) sendChat(w http.ResponseWriter, r *http.Request) {
	h.turn(w, r, (*chat.Session).Send)
}

func (h *Handlers) quickReply(w http.ResponseWriter, r *http.Request) {
	h.turn(w, r, (*chat.Session).SendQuickReply)
}

func (h *Handlers) turn(w http.ResponseWriter, r *http.Request,
	send func(*chat.Session, context.Context, string) (domain.ChatMessage, error)) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	in, ok := readChatInput(w, r, true)
	if !ok {
		return
	}
	reply, err := send(s, r.Context(), in.Message)
	if err != nil {
		writeChatError(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, chatTurn{Reply: reply, Session: s.View()})
}

func (h *Handlers) setChatLanguage(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	in, ok := readChatInput(w, r, true)
	if !ok {
		return
	}
	if err := s.SetLanguage(in.Language); err != nil {
		writeChatError(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.View())
}

func (h *Handlers) requestClear(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.RequestClear()
	writeJSON(w, r, http.StatusOK, s.View())
}

func (h *Handlers) confirmClear(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.ConfirmClear(); err != nil {
		writeChatError(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.View())
}

func (h *Handlers) cancelClear(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.CancelClear()
	writeJSON(w, r, http.StatusOK, s.View())
}
