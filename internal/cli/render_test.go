package cli

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/catchup-chat/catchup/internal/chat"
	"github.com/catchup-chat/catchup/internal/tools"
)

func init() {
	color.NoColor = true
}

func wantContains(t *testing.T, out string, parts ...string) {
	t.Helper()
	for _, part := range parts {
		if !strings.Contains(out, part) {
			t.Errorf("output missing %q:\n%s", part, out)
		}
	}
}

func TestRenderUnread(t *testing.T) {
	out := renderUnread(&tools.UnreadMessagesResult{
		SpaceName:        "spaces/AAA",
		SpaceDisplayName: "Platform Team",
		LastReadTime:     "2024-01-15T09:00:00Z",
		UnreadCount:      2,
		Messages: []tools.UnreadMessage{
			{
				Message: chat.Message{
					Text:       "deploy is out",
					CreateTime: "2024-01-15T10:05:00Z",
				},
				SenderInfo: &tools.SenderInfo{Name: "users/1", DisplayName: "Ana"},
			},
			{
				Message: chat.Message{
					Text:       "ship it",
					CreateTime: "2024-01-15T10:00:00Z",
					Sender:     &chat.User{Name: "users/2"},
				},
			},
		},
		HasMore: true,
	})

	wantContains(t, out,
		"2 unread in Platform Team (spaces/AAA)",
		"last read: 2024-01-15T09:00:00Z",
		"Ana: deploy is out",
		"users/2: ship it",
		"more unread beyond this window",
	)
}

func TestRenderUnreadUnknownSender(t *testing.T) {
	out := renderUnread(&tools.UnreadMessagesResult{
		SpaceName:   "spaces/AAA",
		UnreadCount: 1,
		Messages: []tools.UnreadMessage{
			{Message: chat.Message{Text: "hi", CreateTime: "2024-01-15T10:00:00Z"}},
		},
	})

	wantContains(t, out, "1 unread in spaces/AAA", "unknown: hi")
	if strings.Contains(out, "more unread") {
		t.Errorf("unexpected has-more marker:\n%s", out)
	}
}

func TestRenderConversations(t *testing.T) {
	out := renderConversations(&tools.UnreadConversationsResult{
		TotalSpacesScanned:      5,
		ConversationsWithUnread: 2,
		Conversations: []tools.ConversationSummary{
			{DisplayName: "Platform Team", SpaceType: "SPACE", UnreadCount: 4, Preview: "deploy is out"},
			{DisplayName: "Ana", SpaceType: "DIRECT_MESSAGE", UnreadCount: 1},
		},
	})

	wantContains(t, out,
		"scanned 5 spaces, 2 with unread",
		"Platform Team [space]",
		"deploy is out",
		"Ana [direct_message]",
	)
}

func TestRenderConversationsCaughtUp(t *testing.T) {
	out := renderConversations(&tools.UnreadConversationsResult{TotalSpacesScanned: 3})
	wantContains(t, out, "scanned 3 spaces, 0 with unread", "all caught up")
}

func TestRenderDM(t *testing.T) {
	out := renderDM(&tools.FindDMResult{
		Name:      "spaces/DM1",
		SpaceType: "DIRECT_MESSAGE",
	})
	wantContains(t, out, "found spaces/DM1", "type: direct_message")
	if strings.Contains(out, "display name") {
		t.Errorf("display name line should be omitted when empty:\n%s", out)
	}
}

func TestRenderMarkRead(t *testing.T) {
	out := renderMarkRead(&tools.MarkSpaceReadResult{
		SpaceName:    "spaces/AAA",
		LastReadTime: "2024-01-15T12:00:00.000Z",
		Success:      true,
	})
	wantContains(t, out, "spaces/AAA marked read at 2024-01-15T12:00:00.000Z")
}

func TestRenderState(t *testing.T) {
	out := renderState(&tools.SpaceReadStateResult{
		SpaceName:         "spaces/AAA",
		LastReadTime:      "2024-01-15T11:58:00Z",
		FormattedLastRead: "2 minutes ago",
	})
	wantContains(t, out, "space: spaces/AAA", "last read: 2024-01-15T11:58:00Z (2 minutes ago)")
}

func TestRenderThreadState(t *testing.T) {
	out := renderThreadState(&tools.ThreadReadStateResult{
		SpaceName:         "spaces/AAA",
		ThreadName:        "spaces/AAA/threads/T1",
		LastReadTime:      "",
		FormattedLastRead: "never read",
	})
	wantContains(t, out, "thread: spaces/AAA/threads/T1", "(never read)")
}
