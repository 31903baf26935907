package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
)

func (h *Handler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID int64 `json:"user" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if req.UserID == userID {
		h.errorResponse(w, r, "cannot start a chat with yourself")
		return
	}

	other, err := h.repository.GetUserByID(req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "user not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// a direct chat takes the other party's name as its title
	chat := &domain.Chat{
		Title:   other.DisplayName(),
		IsGroup: false,
	}

	if err := h.repository.CreateChat(chat, []int64{userID, req.UserID}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "chat created", map[string]any{
		"chat": chat,
	})
}

func (h *Handler) CreateGroupChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string  `json:"title" validate:"required"`
		UserIDs []int64 `json:"users" validate:"required,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	participantIDs := []int64{userID}
	for _, id := range req.UserIDs {
		if id != userID {
			participantIDs = append(participantIDs, id)
		}
	}

	chat := &domain.Chat{
		Title:   req.Title,
		IsGroup: true,
	}

	if err := h.repository.CreateChat(chat, participantIDs); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "group chat created", map[string]any{
		"chat": chat,
	})
}

// GetChatList separates chats with at least one message from freshly created
// ones, which the sidebar renders in different sections.
func (h *Handler) GetChatList(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	chats, err := h.repository.GetChatsForUser(userID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	activeChats := make([]*domain.Chat, 0)
	nonActiveChats := make([]*domain.Chat, 0)
	for _, chat := range chats {
		if chat.LastMessage != nil {
			activeChats = append(activeChats, chat)
		} else {
			nonActiveChats = append(nonActiveChats, chat)
		}
	}

	h.successResponse(w, r, "chats fetched", map[string]any{
		"activeChats":    activeChats,
		"nonActiveChats": nonActiveChats,
	})
}

func (h *Handler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	chat := r.Context().Value(ChatCtx).(*domain.Chat)

	query := r.URL.Query()

	limit := 50
	if raw := query.Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var before time.Time
	if raw := query.Get("before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.errorResponse(w, r, "invalid before timestamp")
			return
		}
		before = parsed
	}

	messages, err := h.repository.GetChatMessages(chat.ID, limit, before)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "messages fetched", map[string]any{
		"chat":     chat,
		"messages": messages,
	})
}

func (h *Handler) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChatID      int64  `json:"chat" validate:"required"`
		Content     string `json:"content" validate:"required"`
		ContentType string `json:"contentType"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	chat, err := h.repository.GetChatByID(req.ChatID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "chat not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if !chat.HasParticipant(userID) {
		h.errorResponse(w, r, "not a participant of this chat")
		return
	}

	sender, err := h.repository.GetUserByID(userID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "text"
	}

	msg := &domain.ChatMessage{
		ID:     uuid.NewString(),
		ChatID: chat.ID,
		Sender: domain.ChatParticipant{
			ID:        sender.ID,
			Name:      sender.DisplayName(),
			AvatarURL: sender.AvatarURL,
		},
		Content:     req.Content,
		ContentType: contentType,
	}

	if err := h.repository.CreateChatMessage(msg); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// push the message to every participant with an open socket
	payload, err := json.Marshal(map[string]any{
		"type":    "chat_message",
		"message": msg,
	})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	participantIDs := make([]int64, 0, len(chat.Participants))
	for _, p := range chat.Participants {
		participantIDs = append(participantIDs, p.ID)
	}
	h.hub.Broadcast(participantIDs, payload)

	h.successResponse(w, r, "message sent", map[string]any{
		"message": msg,
	})
}

func (h *Handler) AddToGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChatID int64 `json:"chat" validate:"required"`
		UserID int64 `json:"user" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	chat, err := h.repository.GetChatByID(req.ChatID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "chat not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if !chat.IsGroup {
		h.errorResponse(w, r, "not a group chat")
		return
	}
	if !chat.HasParticipant(userID) {
		h.errorResponse(w, r, "not a participant of this chat")
		return
	}
	if chat.HasParticipant(req.UserID) {
		h.errorResponse(w, r, "user is already a participant")
		return
	}

	if err := h.repository.AddChatParticipant(chat.ID, req.UserID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "user added to group", nil)
}

func (h *Handler) RemoveFromGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChatID int64 `json:"chat" validate:"required"`
		UserID int64 `json:"user" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	chat, err := h.repository.GetChatByID(req.ChatID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "chat not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if !chat.IsGroup {
		h.errorResponse(w, r, "not a group chat")
		return
	}
	if !chat.HasParticipant(userID) {
		h.errorResponse(w, r, "not a participant of this chat")
		return
	}
	if !chat.HasParticipant(req.UserID) {
		h.errorResponse(w, r, "user is not a participant")
		return
	}

	if err := h.repository.RemoveChatParticipant(chat.ID, req.UserID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "user removed from group", nil)
}

func (h *Handler) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	chat := r.Context().Value(ChatCtx).(*domain.Chat)

	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if !chat.IsGroup {
		h.errorResponse(w, r, "not a group chat")
		return
	}

	if err := h.repository.RemoveChatParticipant(chat.ID, userID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "left the group", nil)
}
