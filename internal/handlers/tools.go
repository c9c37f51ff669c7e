package handlers

import (
	"errors"
	"net/http"

	"github.com/catchup-chat/catchup/internal/auth"
	"github.com/catchup-chat/catchup/internal/chat"
	"github.com/catchup-chat/catchup/internal/tools"
)

// toolError maps a tool failure onto an HTTP status. Bad arguments are the
// caller's fault; missing credentials mean the gateway cannot act on the
// user's behalf; upstream client errors pass through, upstream server
// errors surface as a bad gateway.
func (h *Handler) toolError(w http.ResponseWriter, err error) {
	var verr tools.ValidationError
	if errors.As(err, &verr) {
		h.Error(w, http.StatusBadRequest, verr.Error())
		return
	}

	if errors.Is(err, auth.ErrNoCredentials) {
		h.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var apiErr *chat.APIError
	if errors.As(err, &apiErr) {
		status := http.StatusBadGateway
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			status = apiErr.StatusCode
		}
		h.Error(w, status, err.Error())
		return
	}

	h.logger.Error().Err(err).Msg("tool call failed")
	h.Error(w, http.StatusInternalServerError, "internal error")
}

// UnreadMessages handles POST /tools/get_unread_messages.
func (h *Handler) UnreadMessages(w http.ResponseWriter, r *http.Request) {
	var opts tools.UnreadMessagesOptions
	if !h.decode(w, r, &opts) {
		return
	}
	result, err := h.svc.UnreadMessages(r.Context(), opts)
	if err != nil {
		h.toolError(w, err)
		return
	}
	h.JSON(w, http.StatusOK, result)
}

// UnreadConversations handles POST /tools/get_unread_conversations.
func (h *Handler) UnreadConversations(w http.ResponseWriter, r *http.Request) {
	var opts tools.UnreadConversationsOptions
	if !h.decode(w, r, &opts) {
		return
	}
	result, err := h.svc.UnreadConversations(r.Context(), opts)
	if err != nil {
		h.toolError(w, err)
		return
	}
	h.JSON(w, http.StatusOK, result)
}

// FindDM handles POST /tools/find_dm.
func (h *Handler) FindDM(w http.ResponseWriter, r *http.Request) {
	var opts tools.FindDMOptions
	if !h.decode(w, r, &opts) {
		return
	}
	result, err := h.svc.FindDM(r.Context(), opts)
	if err != nil {
		h.toolError(w, err)
		return
	}
	h.JSON(w, http.StatusOK, result)
}

// MarkSpaceRead handles POST /tools/mark_space_read.
func (h *Handler) MarkSpaceRead(w http.ResponseWriter, r *http.Request) {
	var opts tools.MarkSpaceReadOptions
	if !h.decode(w, r, &opts) {
		return
	}
	result, err := h.svc.MarkSpaceRead(r.Context(), opts)
	if err != nil {
		h.toolError(w, err)
		return
	}
	h.JSON(w, http.StatusOK, result)
}

// SpaceReadState handles POST /tools/get_space_read_state.
func (h *Handler) SpaceReadState(w http.ResponseWriter, r *http.Request) {
	var opts tools.SpaceReadStateOptions
	if !h.decode(w, r, &opts) {
		return
	}
	result, err := h.svc.SpaceReadState(r.Context(), opts)
	if err != nil {
		h.toolError(w, err)
		return
	}
	h.JSON(w, http.StatusOK, result)
}

// ThreadReadState handles POST /tools/get_thread_read_state.
func (h *Handler) ThreadReadState(w http.ResponseWriter, r *http.Request) {
	var opts tools.ThreadReadStateOptions
	if !h.decode(w, r, &opts) {
		return
	}
	result, err := h.svc.ThreadReadState(r.Context(), opts)
	if err != nil {
		h.toolError(w, err)
		return
	}
	h.JSON(w, http.StatusOK, result)
}
