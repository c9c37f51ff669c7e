package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/catchup-chat/catchup/internal/chat"
)

// MarkSpaceReadOptions configures a mark-as-read update.
type MarkSpaceReadOptions struct {
	// SpaceName is the space to mark, with or without the "spaces/" prefix.
	SpaceName string `json:"space_name"`
	// LastReadTime is the read position to record. Defaults to now.
	LastReadTime string `json:"last_read_time,omitempty"`
}

// MarkSpaceReadResult reports the recorded read position.
type MarkSpaceReadResult struct {
	SpaceName    string `json:"space_name"`
	LastReadTime string `json:"last_read_time"`
	Success      bool   `json:"success"`
}

// MarkSpaceRead advances a space's read position, marking every message up
// to the given time (or now) as read.
func (s *Service) MarkSpaceRead(ctx context.Context, opts MarkSpaceReadOptions) (result *MarkSpaceReadResult, err error) {
	start := time.Now()
	defer func() { observe(ToolMarkSpaceRead, start, err) }()

	if opts.SpaceName == "" {
		return nil, ValidationError("space_name is required")
	}
	space := chat.NormalizeSpaceName(opts.SpaceName)

	lastRead := opts.LastReadTime
	if lastRead == "" {
		lastRead = chat.FormatTimestamp(time.Now().UTC())
	} else if _, err := chat.ParseTimestamp(lastRead); err != nil {
		return nil, ValidationError(fmt.Sprintf("last_read_time: %v", err))
	}

	s.logger.Info().Str("space", space).Str("lastReadTime", lastRead).Msg("marking space as read")

	state, err := s.api.UpdateSpaceReadState(ctx, space, lastRead)
	if err != nil {
		return nil, fmt.Errorf("update read state for %s: %w", space, err)
	}

	return &MarkSpaceReadResult{
		SpaceName:    space,
		LastReadTime: state.LastReadTime,
		Success:      true,
	}, nil
}

// SpaceReadStateOptions identifies the space to inspect.
type SpaceReadStateOptions struct {
	SpaceName string `json:"space_name"`
}

// SpaceReadStateResult reports a space's read position.
type SpaceReadStateResult struct {
	Name              string `json:"name"`
	SpaceName         string `json:"space_name"`
	LastReadTime      string `json:"last_read_time"`
	FormattedLastRead string `json:"formatted_last_read"`
}

// SpaceReadState reports when a space was last read, without fetching any
// messages.
func (s *Service) SpaceReadState(ctx context.Context, opts SpaceReadStateOptions) (result *SpaceReadStateResult, err error) {
	start := time.Now()
	defer func() { observe(ToolSpaceReadState, start, err) }()

	if opts.SpaceName == "" {
		return nil, ValidationError("space_name is required")
	}
	space := chat.NormalizeSpaceName(opts.SpaceName)

	state, err := s.api.GetSpaceReadState(ctx, space)
	if err != nil {
		return nil, fmt.Errorf("get read state for %s: %w", space, err)
	}

	return &SpaceReadStateResult{
		Name:              state.Name,
		SpaceName:         space,
		LastReadTime:      state.LastReadTime,
		FormattedLastRead: formatLastRead(state.LastReadTime, time.Now().UTC()),
	}, nil
}

// ThreadReadStateOptions identifies the thread to inspect.
type ThreadReadStateOptions struct {
	SpaceName string `json:"space_name"`
	// ThreadName accepts a bare thread ID, a "threads/{t}" suffix or a full
	// "spaces/{s}/threads/{t}" resource name.
	ThreadName string `json:"thread_name"`
}

// ThreadReadStateResult reports a thread's read position.
type ThreadReadStateResult struct {
	Name              string `json:"name"`
	SpaceName         string `json:"space_name"`
	ThreadName        string `json:"thread_name"`
	LastReadTime      string `json:"last_read_time"`
	FormattedLastRead string `json:"formatted_last_read"`
}

// ThreadReadState reports when a thread within a space was last read.
func (s *Service) ThreadReadState(ctx context.Context, opts ThreadReadStateOptions) (result *ThreadReadStateResult, err error) {
	start := time.Now()
	defer func() { observe(ToolThreadReadState, start, err) }()

	if opts.SpaceName == "" {
		return nil, ValidationError("space_name is required")
	}
	if opts.ThreadName == "" {
		return nil, ValidationError("thread_name is required")
	}
	space := chat.NormalizeSpaceName(opts.SpaceName)
	thread := chat.NormalizeThreadName(space, opts.ThreadName)

	state, err := s.api.GetThreadReadState(ctx, space, thread)
	if err != nil {
		return nil, fmt.Errorf("get read state for %s: %w", thread, err)
	}

	return &ThreadReadStateResult{
		Name:              state.Name,
		SpaceName:         space,
		ThreadName:        thread,
		LastReadTime:      state.LastReadTime,
		FormattedLastRead: formatLastRead(state.LastReadTime, time.Now().UTC()),
	}, nil
}

// formatLastRead renders a read position for humans. Unparsable values are
// returned verbatim.
func formatLastRead(lastRead string, now time.Time) string {
	if lastRead == "" {
		return "never read"
	}
	ts, err := chat.ParseTimestamp(lastRead)
	if err != nil {
		return lastRead
	}

	diff := now.Sub(ts)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 48*time.Hour:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", int(diff.Hours()/24))
	}
}
