// File: internal/handlers/completion_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/nordsted/juridisk-ai/internal/dtos"
	"github.com/nordsted/juridisk-ai/internal/middleware"
	"github.com/nordsted/juridisk-ai/internal/services/chat"
	"github.com/nordsted/juridisk-ai/internal/services/completion"
	"github.com/nordsted/juridisk-ai/internal/services/reveal"
)

const (
	msgNoText      = "Ingen tekst blev sendt"
	msgMissingKey  = "Gemini API nøgle mangler"
	msgUnavailable = "Gemini AI er midlertidigt utilgængelig. Prøv venligst igen om et par minutter."
	msgAnswerFail  = "Der opstod en fejl ved besvarelse af spørgsmålet. Prøv venligst igen."
)

type CompletionHandler struct {
	CompletionService *completion.Service
	ChatService       *chat.Service
	Presenter         *reveal.Presenter
}

func NewCompletionHandler(cs *completion.Service, chats *chat.Service, presenter *reveal.Presenter) *CompletionHandler {
	return &CompletionHandler{
		CompletionService: cs,
		ChatService:       chats,
		Presenter:         presenter,
	}
}

// Answer generates a complete answer in one response. The pseudo-streaming
// reveal happens client side; this endpoint returns the full text at once.
func (h *CompletionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req dtos.CompletionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, msgNoText, http.StatusBadRequest)
		return
	}

	answer, err := h.CompletionService.Answer(r.Context(), req.Text, historyToTurns(req.ConversationHistory))
	if err != nil {
		h.writeCompletionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dtos.CompletionResponseDTO{Summary: answer})
}

// Stream generates an answer and replays it over server-sent events, one
// line at a time with the same pacing the browser reveal uses. When the
// request names a chat, the question and answer are appended to it after
// the reveal completes.
func (h *CompletionHandler) Stream(w http.ResponseWriter, r *http.Request) {
	var req dtos.StreamCompletionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, msgNoText, http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, "Streaming ikke understøttet", http.StatusInternalServerError)
		return
	}

	answer, err := h.CompletionService.Answer(r.Context(), req.Text, historyToTurns(req.ConversationHistory))
	if err != nil {
		h.writeCompletionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	err = h.Presenter.Reveal(r.Context(), answer, func(accumulated string) {
		payload, _ := json.Marshal(map[string]interface{}{
			"summary": accumulated,
			"html":    reveal.RenderMessage(accumulated),
		})
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	})
	if err != nil {
		// Client went away mid-reveal. Nothing to send, skip persistence.
		log.Printf("[CompletionHandler] Stream cancelled: %v", err)
		return
	}

	fmt.Fprint(w, "event: done\ndata: {}\n\n")
	flusher.Flush()

	if req.ChatID != 0 {
		h.persistExchange(r, req, answer)
	}
}

// persistExchange appends the question and answer to the chat using the
// replace-all save, preserving whatever history the client sent.
func (h *CompletionHandler) persistExchange(r *http.Request, req dtos.StreamCompletionRequestDTO, answer string) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return
	}

	inputs := make([]chat.MessageInput, 0, len(req.ConversationHistory)+2)
	for _, turn := range req.ConversationHistory {
		inputs = append(inputs, chat.MessageInput{Text: turn.Text, IsUser: turn.IsUser})
	}
	inputs = append(inputs,
		chat.MessageInput{Text: req.Text, IsUser: true},
		chat.MessageInput{Text: answer, IsUser: false},
	)

	if _, err := h.ChatService.ReplaceMessages(r.Context(), userID, req.ChatID, inputs); err != nil {
		log.Printf("[CompletionHandler] Could not persist exchange to chat %d: %v", req.ChatID, err)
	}
}

func (h *CompletionHandler) writeCompletionError(w http.ResponseWriter, err error) {
	switch completion.TypeOf(err) {
	case completion.ErrTypeValidation:
		writeError(w, msgNoText, http.StatusBadRequest)
	case completion.ErrTypeConfig:
		writeError(w, msgMissingKey, http.StatusInternalServerError)
	case completion.ErrTypeUnavailable:
		writeError(w, msgUnavailable, http.StatusServiceUnavailable)
	default:
		log.Printf("[CompletionHandler] Completion failed: %v", err)
		writeError(w, msgAnswerFail, http.StatusInternalServerError)
	}
}

func historyToTurns(history []dtos.HistoryTurnDTO) []completion.Turn {
	turns := make([]completion.Turn, len(history))
	for i, h := range history {
		turns[i] = completion.Turn{Text: h.Text, IsUser: h.IsUser}
	}
	return turns
}
