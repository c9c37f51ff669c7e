// Package tools implements the catch-up operations exposed through the
// HTTP gateway and the CLI. Each tool wraps one or more workspace API
// calls with the read-state bookkeeping around them.
package tools

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/catchup-chat/catchup/internal/chat"
	"github.com/catchup-chat/catchup/internal/metrics"
)

// Tool names, used for routes, metrics labels and the catalog.
const (
	ToolUnreadMessages      = "get_unread_messages"
	ToolUnreadConversations = "get_unread_conversations"
	ToolFindDM              = "find_dm"
	ToolMarkSpaceRead       = "mark_space_read"
	ToolSpaceReadState      = "get_space_read_state"
	ToolThreadReadState     = "get_thread_read_state"
)

// ChatAPI is the slice of the workspace API the tools consume.
type ChatAPI interface {
	GetSpaceReadState(ctx context.Context, space string) (*chat.ReadState, error)
	UpdateSpaceReadState(ctx context.Context, space, lastReadTime string) (*chat.ReadState, error)
	GetThreadReadState(ctx context.Context, space, thread string) (*chat.ReadState, error)
	FindDirectMessage(ctx context.Context, user string) (*chat.Space, error)
	ListAllSpaces(ctx context.Context) ([]chat.Space, error)
	ListMessages(ctx context.Context, space string, opts chat.ListMessagesOptions) (*chat.ListMessagesResponse, error)
	GetUser(ctx context.Context, user string) (*chat.User, error)
}

var _ ChatAPI = (*chat.Client)(nil)

// ValidationError marks a rejected tool argument. The gateway reports it
// as a client error instead of an upstream failure.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Service executes tool operations against the workspace API. Calls are
// issued sequentially; no state is kept between invocations, so every
// result reflects the remote read state at call time.
type Service struct {
	api    ChatAPI
	logger zerolog.Logger
}

func NewService(api ChatAPI, logger zerolog.Logger) *Service {
	return &Service{
		api:    api,
		logger: logger.With().Str("component", "tools").Logger(),
	}
}

// observe records the outcome of one tool invocation.
func observe(tool string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.ToolCallsTotal.WithLabelValues(tool, status).Inc()
	metrics.ToolCallDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
}

// boolOption resolves an optional flag against its default.
func boolOption(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// ToolInfo describes one catalog entry.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Method      string `json:"method"`
	Path        string `json:"path"`
}

// Catalog lists every tool the gateway serves.
func Catalog() []ToolInfo {
	return []ToolInfo{
		{
			Name:        ToolUnreadMessages,
			Description: "List messages posted to a space since it was last read",
			Method:      "POST",
			Path:        "/tools/" + ToolUnreadMessages,
		},
		{
			Name:        ToolUnreadConversations,
			Description: "Scan all spaces and summarize the ones with unread messages",
			Method:      "POST",
			Path:        "/tools/" + ToolUnreadConversations,
		},
		{
			Name:        ToolFindDM,
			Description: "Find the direct-message space shared with a user",
			Method:      "POST",
			Path:        "/tools/" + ToolFindDM,
		},
		{
			Name:        ToolMarkSpaceRead,
			Description: "Mark a space as read up to a timestamp (default: now)",
			Method:      "POST",
			Path:        "/tools/" + ToolMarkSpaceRead,
		},
		{
			Name:        ToolSpaceReadState,
			Description: "Report when a space was last read",
			Method:      "POST",
			Path:        "/tools/" + ToolSpaceReadState,
		},
		{
			Name:        ToolThreadReadState,
			Description: "Report when a thread was last read",
			Method:      "POST",
			Path:        "/tools/" + ToolThreadReadState,
		},
	}
}
