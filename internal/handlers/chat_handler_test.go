// File: internal/handlers/chat_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordsted/juridisk-ai/internal/domain"
)

func TestChatHandler_CreateAndList(t *testing.T) {
	chats, _ := newChatService(t)
	h := NewChatHandler(chats)

	rec := httptest.NewRecorder()
	h.CreateChat(rec, asUser(postJSON(t, "/api/chats", map[string]string{}), 1))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.DefaultChatTitle)

	rec = httptest.NewRecorder()
	h.ListChats(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/chats", nil), 1))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Chats []struct {
			ID    uint   `json:"id"`
			Title string `json:"title"`
		} `json:"chats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Chats, 1)
	assert.Equal(t, domain.DefaultChatTitle, resp.Chats[0].Title)
}

func TestChatHandler_Unauthenticated(t *testing.T) {
	chats, _ := newChatService(t)
	h := NewChatHandler(chats)

	rec := httptest.NewRecorder()
	h.ListChats(rec, httptest.NewRequest(http.MethodGet, "/api/chats", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatHandler_GetChatNotFound(t *testing.T) {
	chats, _ := newChatService(t)
	h := NewChatHandler(chats)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/chats/99", nil), 1)
	req = mux.SetURLVars(req, map[string]string{"id": "99"})

	rec := httptest.NewRecorder()
	h.GetChat(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Chat ikke fundet")
}

func TestChatHandler_GetChatHidesOtherOwners(t *testing.T) {
	chats, db := newChatService(t)
	h := NewChatHandler(chats)

	other := domain.Chat{UserID: 2, Title: "Privat"}
	require.NoError(t, db.Create(&other).Error)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/chats/1", nil), 1)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})

	rec := httptest.NewRecorder()
	h.GetChat(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatHandler_SaveMessagesReplacesAndRetitles(t *testing.T) {
	chats, db := newChatService(t)
	h := NewChatHandler(chats)

	chat := domain.Chat{UserID: 1, Title: domain.DefaultChatTitle}
	require.NoError(t, db.Create(&chat).Error)

	body := map[string]interface{}{
		"messages": []map[string]interface{}{
			{"text": "Hvad er mine rettigheder?", "isUser": true},
			{"text": "Det kommer an på situationen.", "isUser": false},
		},
	}
	req := asUser(postJSON(t, "/api/chats/1/messages", body), 1)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})

	rec := httptest.NewRecorder()
	h.SaveMessages(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Messages []struct {
			Content string `json:"content"`
			Order   int    `json:"order"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, 0, resp.Messages[0].Order)
	assert.Equal(t, 1, resp.Messages[1].Order)

	var updated domain.Chat
	require.NoError(t, db.First(&updated, chat.ID).Error)
	assert.Equal(t, "Hvad er mine rettigheder?", updated.Title)
}

func TestChatHandler_DeleteChat(t *testing.T) {
	chats, db := newChatService(t)
	h := NewChatHandler(chats)

	chat := domain.Chat{UserID: 1, Title: domain.DefaultChatTitle}
	require.NoError(t, db.Create(&chat).Error)

	req := asUser(httptest.NewRequest(http.MethodDelete, "/api/chats/1", nil), 1)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})

	rec := httptest.NewRecorder()
	h.DeleteChat(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "true"))

	var count int64
	require.NoError(t, db.Model(&domain.Chat{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestChatHandler_InvalidChatID(t *testing.T) {
	chats, _ := newChatService(t)
	h := NewChatHandler(chats)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/chats/abc", nil), 1)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})

	rec := httptest.NewRecorder()
	h.GetChat(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
