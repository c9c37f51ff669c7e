package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/catchup-chat/catchup/internal/chat"
	"github.com/catchup-chat/catchup/internal/unread"
)

const (
	defaultUnreadMessages = 50
	maxUnreadMessages     = 1000
)

// UnreadMessagesOptions configures a single-space unread check.
type UnreadMessagesOptions struct {
	// SpaceName is the space to check, with or without the "spaces/" prefix.
	SpaceName string `json:"space_name"`
	// IncludeSenderInfo attaches workspace profile details to each message.
	// Defaults to true.
	IncludeSenderInfo *bool `json:"include_sender_info,omitempty"`
	// MaxResults bounds the returned messages. Defaults to 50, capped at 1000.
	MaxResults int `json:"max_results,omitempty"`
}

// SenderInfo is the profile detail attached to a message when
// include_sender_info is set.
type SenderInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Type        string `json:"type,omitempty"`
}

// UnreadMessage is a message classified as unread, optionally enriched
// with sender profile details.
type UnreadMessage struct {
	chat.Message
	SenderInfo *SenderInfo `json:"sender_info,omitempty"`
}

// UnreadMessagesResult is the outcome of a single-space unread check.
type UnreadMessagesResult struct {
	SpaceName        string          `json:"space_name"`
	SpaceDisplayName string          `json:"space_display_name,omitempty"`
	LastReadTime     string          `json:"last_read_time"`
	UnreadCount      int             `json:"unread_count"`
	Messages         []UnreadMessage `json:"messages"`
	HasMore          bool            `json:"has_more"`
}

// UnreadMessages returns the messages posted to a space since the user
// last read it. Messages are returned newest first.
func (s *Service) UnreadMessages(ctx context.Context, opts UnreadMessagesOptions) (result *UnreadMessagesResult, err error) {
	start := time.Now()
	defer func() { observe(ToolUnreadMessages, start, err) }()

	if opts.SpaceName == "" {
		return nil, ValidationError("space_name is required")
	}

	space := chat.NormalizeSpaceName(opts.SpaceName)
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = defaultUnreadMessages
	}
	if maxResults > maxUnreadMessages {
		maxResults = maxUnreadMessages
	}

	state, err := s.api.GetSpaceReadState(ctx, space)
	if err != nil {
		return nil, fmt.Errorf("get read state for %s: %w", space, err)
	}

	lastRead := state.LastReadTime
	if lastRead == "" {
		s.logger.Warn().Str("space", space).Msg("space has no last read time, treating all messages as unread")
		lastRead = chat.EpochZero
	}

	page, err := s.api.ListMessages(ctx, space, chat.ListMessagesOptions{
		PageSize: maxResults,
		OrderBy:  "createTime desc",
	})
	if err != nil {
		return nil, fmt.Errorf("list messages for %s: %w", space, err)
	}

	var unreadMsgs []chat.Message
	watermark, err := unread.Watermark(lastRead)
	if err != nil {
		s.logger.Warn().Err(err).Str("space", space).Msg("unparsable last read time, reporting no unread messages")
	} else {
		unreadMsgs = unread.Classify(page.Messages, watermark, s.logger)
	}

	result = &UnreadMessagesResult{
		SpaceName:    space,
		LastReadTime: lastRead,
		UnreadCount:  len(unreadMsgs),
		Messages:     make([]UnreadMessage, 0, len(unreadMsgs)),
		HasMore:      len(page.Messages) >= maxResults && len(unreadMsgs) == maxResults,
	}
	if len(page.Messages) > 0 && page.Messages[0].Space != nil {
		result.SpaceDisplayName = page.Messages[0].Space.DisplayName
	}
	for _, msg := range unreadMsgs {
		result.Messages = append(result.Messages, UnreadMessage{Message: msg})
	}

	if boolOption(opts.IncludeSenderInfo, true) {
		s.attachSenderInfo(ctx, result.Messages)
	}

	return result, nil
}

// attachSenderInfo resolves each distinct sender once per call; lookup
// failures leave the message without profile details.
func (s *Service) attachSenderInfo(ctx context.Context, msgs []UnreadMessage) {
	profiles := make(map[string]*SenderInfo)
	for i := range msgs {
		sender := msgs[i].Sender
		if sender == nil || sender.Name == "" {
			continue
		}
		info, seen := profiles[sender.Name]
		if !seen {
			user, err := s.api.GetUser(ctx, sender.Name)
			if err != nil {
				s.logger.Warn().Err(err).Str("user", sender.Name).Msg("failed to fetch sender details")
				profiles[sender.Name] = nil
				continue
			}
			info = &SenderInfo{
				Name:        user.Name,
				DisplayName: user.DisplayName,
				Email:       user.Email,
				Type:        user.Type,
			}
			profiles[sender.Name] = info
		}
		msgs[i].SenderInfo = info
	}
}
