package tools

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/catchup-chat/catchup/internal/chat"
	"github.com/catchup-chat/catchup/internal/metrics"
	"github.com/catchup-chat/catchup/internal/unread"
)

const (
	defaultUnreadConversations = 20

	// scanWindow bounds the messages fetched per space during a scan, so
	// per-space unread counts are estimates capped at this value.
	scanWindow = 20
)

// UnreadConversationsOptions configures an all-space unread scan.
type UnreadConversationsOptions struct {
	// IncludeDMs keeps direct-message spaces in the scan. Defaults to true.
	IncludeDMs *bool `json:"include_dms,omitempty"`
	// IncludeSpaces keeps rooms and group chats in the scan. Defaults to true.
	IncludeSpaces *bool `json:"include_spaces,omitempty"`
	// MaxResults bounds the returned summaries, not the number of spaces
	// scanned. Defaults to 20.
	MaxResults int `json:"max_results,omitempty"`
}

// ConversationSummary describes one space with unread messages.
type ConversationSummary struct {
	SpaceName         string `json:"space_name"`
	DisplayName       string `json:"display_name"`
	SpaceType         string `json:"space_type"`
	LastReadTime      string `json:"last_read_time"`
	UnreadCount       int    `json:"unread_count"`
	LatestMessageTime string `json:"latest_message_time"`
	Preview           string `json:"preview,omitempty"`
}

// UnreadConversationsResult is the outcome of an all-space scan.
type UnreadConversationsResult struct {
	TotalSpacesScanned      int                   `json:"total_spaces_scanned"`
	ConversationsWithUnread int                   `json:"conversations_with_unread"`
	Conversations           []ConversationSummary `json:"conversations"`
}

// UnreadConversations scans every accessible space and summarizes the ones
// with unread messages, most unread first. Spaces that fail to scan are
// logged and skipped; they still count as scanned.
func (s *Service) UnreadConversations(ctx context.Context, opts UnreadConversationsOptions) (result *UnreadConversationsResult, err error) {
	start := time.Now()
	defer func() { observe(ToolUnreadConversations, start, err) }()

	includeDMs := boolOption(opts.IncludeDMs, true)
	includeSpaces := boolOption(opts.IncludeSpaces, true)
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = defaultUnreadConversations
	}

	logger := s.logger.With().Str("scan", ulid.Make().String()).Logger()

	spaces, err := s.api.ListAllSpaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list spaces: %w", err)
	}
	logger.Info().Int("spaces", len(spaces)).Msg("scanning spaces for unread messages")

	summaries := make([]ConversationSummary, 0)
	totalScanned := 0

	for _, space := range spaces {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		spaceType := space.SpaceType
		if spaceType == "" {
			spaceType = chat.SpaceTypeSpace
		}
		if spaceType == chat.SpaceTypeDirectMessage && !includeDMs {
			continue
		}
		if spaceType != chat.SpaceTypeDirectMessage && !includeSpaces {
			continue
		}

		totalScanned++
		metrics.SpacesScanned.Inc()

		summary, err := s.scanSpace(ctx, logger, space, spaceType)
		if err != nil {
			metrics.SpaceScanFailures.Inc()
			logger.Warn().Err(err).Str("space", space.Name).Msg("failed to check space, skipping")
			continue
		}
		if summary != nil {
			summaries = append(summaries, *summary)
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].UnreadCount > summaries[j].UnreadCount
	})
	if len(summaries) > maxResults {
		summaries = summaries[:maxResults]
	}

	logger.Info().
		Int("scanned", totalScanned).
		Int("with_unread", len(summaries)).
		Dur("elapsed", time.Since(start)).
		Msg("scan complete")

	return &UnreadConversationsResult{
		TotalSpacesScanned:      totalScanned,
		ConversationsWithUnread: len(summaries),
		Conversations:           summaries,
	}, nil
}

// scanSpace checks one space for unread messages. It returns nil with no
// error when the space has nothing unread.
func (s *Service) scanSpace(ctx context.Context, logger zerolog.Logger, space chat.Space, spaceType string) (*ConversationSummary, error) {
	state, err := s.api.GetSpaceReadState(ctx, space.Name)
	if err != nil {
		return nil, fmt.Errorf("get read state: %w", err)
	}

	lastRead := state.LastReadTime
	if lastRead == "" {
		lastRead = chat.EpochZero
	}
	watermark, err := unread.Watermark(lastRead)
	if err != nil {
		logger.Warn().Err(err).Str("space", space.Name).Msg("unparsable last read time, treating space as read")
		return nil, nil
	}

	page, err := s.api.ListMessages(ctx, space.Name, chat.ListMessagesOptions{
		PageSize: scanWindow,
		OrderBy:  "createTime desc",
	})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	msgs := unread.Classify(page.Messages, watermark, logger)
	if len(msgs) == 0 {
		return nil, nil
	}

	displayName := space.DisplayName
	if displayName == "" {
		displayName = "Unnamed Space"
	}

	latest := msgs[0]
	summary := &ConversationSummary{
		SpaceName:         space.Name,
		DisplayName:       displayName,
		SpaceType:         spaceType,
		LastReadTime:      lastRead,
		UnreadCount:       len(msgs),
		LatestMessageTime: latest.CreateTime,
	}
	if latest.Text != "" {
		summary.Preview = unread.Preview(latest.Text)
	}
	return summary, nil
}
