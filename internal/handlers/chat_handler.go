// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nordsted/juridisk-ai/internal/dtos"
	"github.com/nordsted/juridisk-ai/internal/middleware"
	"github.com/nordsted/juridisk-ai/internal/services/chat"
)

type ChatHandler struct {
	ChatService *chat.Service
}

func NewChatHandler(cs *chat.Service) *ChatHandler {
	return &ChatHandler{ChatService: cs}
}

// ListChats returns the user's chats, most recently updated first.
func (h *ChatHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Ikke logget ind", http.StatusUnauthorized)
		return
	}

	chats, err := h.ChatService.ListChats(r.Context(), userID)
	if err != nil {
		writeError(w, "Kunne ikke hente chats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chats": dtos.FromChatDomainSlice(chats),
	})
}

// CreateChat creates a new chat, defaulting the title when none is given.
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Ikke logget ind", http.StatusUnauthorized)
		return
	}

	var req dtos.CreateChatRequestDTO
	if r.Body != nil {
		// An empty body is fine, the title just falls back to the default.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	created, err := h.ChatService.CreateChat(r.Context(), userID, req.Title)
	if err != nil {
		writeError(w, "Kunne ikke oprette chat", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"chat": dtos.FromChatDomain(*created),
	})
}

// GetChat returns one chat with its messages in order.
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Ikke logget ind", http.StatusUnauthorized)
		return
	}

	chatID, err := chatIDFromRequest(r)
	if err != nil {
		writeError(w, "Ugyldigt chat-id", http.StatusBadRequest)
		return
	}

	found, messages, err := h.ChatService.GetChat(r.Context(), userID, chatID)
	if err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			writeError(w, "Chat ikke fundet", http.StatusNotFound)
			return
		}
		writeError(w, "Kunne ikke hente chat", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chat": dtos.ChatWithMessagesDTO{
			ChatResponseDTO: dtos.FromChatDomain(*found),
			Messages:        dtos.FromMessageDomainSlice(messages),
		},
	})
}

// DeleteChat removes a chat and its messages.
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Ikke logget ind", http.StatusUnauthorized)
		return
	}

	chatID, err := chatIDFromRequest(r)
	if err != nil {
		writeError(w, "Ugyldigt chat-id", http.StatusBadRequest)
		return
	}

	if err := h.ChatService.DeleteChat(r.Context(), userID, chatID); err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			writeError(w, "Chat ikke fundet", http.StatusNotFound)
			return
		}
		writeError(w, "Kunne ikke slette chat", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// SaveMessages replaces the chat's full message set with the request body.
func (h *ChatHandler) SaveMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Ikke logget ind", http.StatusUnauthorized)
		return
	}

	chatID, err := chatIDFromRequest(r)
	if err != nil {
		writeError(w, "Ugyldigt chat-id", http.StatusBadRequest)
		return
	}

	var req dtos.SaveMessagesRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Ugyldig forespørgsel", http.StatusBadRequest)
		return
	}

	inputs := make([]chat.MessageInput, len(req.Messages))
	for i, m := range req.Messages {
		inputs[i] = chat.MessageInput{Text: m.Text, IsUser: m.IsUser}
	}

	saved, err := h.ChatService.ReplaceMessages(r.Context(), userID, chatID, inputs)
	if err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			writeError(w, "Chat ikke fundet", http.StatusNotFound)
			return
		}
		writeError(w, "Kunne ikke gemme beskeder", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"messages": dtos.FromMessageDomainSlice(saved),
	})
}

func chatIDFromRequest(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
