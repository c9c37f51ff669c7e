package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/catchup-chat/catchup/internal/tools"
)

var (
	countColor = color.New(color.FgHiYellow)
	nameColor  = color.New(color.FgCyan)
	dimColor   = color.New(color.Faint)
	okColor    = color.New(color.FgGreen)
)

func renderUnread(r *tools.UnreadMessagesResult) string {
	var b strings.Builder

	title := r.SpaceName
	if r.SpaceDisplayName != "" {
		title = fmt.Sprintf("%s (%s)", r.SpaceDisplayName, r.SpaceName)
	}
	fmt.Fprintf(&b, "%s unread in %s\n", countColor.Sprintf("%d", r.UnreadCount), nameColor.Sprint(title))
	fmt.Fprintf(&b, "last read: %s\n", r.LastReadTime)

	for _, msg := range r.Messages {
		sender := "unknown"
		switch {
		case msg.SenderInfo != nil && msg.SenderInfo.DisplayName != "":
			sender = msg.SenderInfo.DisplayName
		case msg.Sender != nil && msg.Sender.Name != "":
			sender = msg.Sender.Name
		}
		fmt.Fprintf(&b, "  %s  %s: %s\n", dimColor.Sprint(msg.CreateTime), nameColor.Sprint(sender), msg.Text)
	}
	if r.HasMore {
		fmt.Fprintf(&b, "  %s\n", dimColor.Sprint("...more unread beyond this window"))
	}
	return b.String()
}

func renderConversations(r *tools.UnreadConversationsResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "scanned %d spaces, %d with unread\n", r.TotalSpacesScanned, r.ConversationsWithUnread)
	if len(r.Conversations) == 0 {
		fmt.Fprintf(&b, "%s\n", okColor.Sprint("all caught up"))
		return b.String()
	}

	for _, conv := range r.Conversations {
		fmt.Fprintf(&b, "  %s  %s %s\n",
			countColor.Sprintf("%3d", conv.UnreadCount),
			nameColor.Sprint(conv.DisplayName),
			dimColor.Sprintf("[%s]", strings.ToLower(conv.SpaceType)))
		if conv.Preview != "" {
			fmt.Fprintf(&b, "        %s\n", dimColor.Sprint(conv.Preview))
		}
	}
	return b.String()
}

func renderDM(r *tools.FindDMResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", okColor.Sprint("found"), nameColor.Sprint(r.Name))
	if r.DisplayName != "" {
		fmt.Fprintf(&b, "display name: %s\n", r.DisplayName)
	}
	fmt.Fprintf(&b, "type: %s\n", strings.ToLower(r.SpaceType))
	return b.String()
}

func renderMarkRead(r *tools.MarkSpaceReadResult) string {
	return fmt.Sprintf("%s %s marked read at %s\n",
		okColor.Sprint("✓"), nameColor.Sprint(r.SpaceName), r.LastReadTime)
}

func renderState(r *tools.SpaceReadStateResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "space: %s\n", nameColor.Sprint(r.SpaceName))
	fmt.Fprintf(&b, "last read: %s %s\n", r.LastReadTime, dimColor.Sprintf("(%s)", r.FormattedLastRead))
	return b.String()
}

func renderThreadState(r *tools.ThreadReadStateResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "space:  %s\n", nameColor.Sprint(r.SpaceName))
	fmt.Fprintf(&b, "thread: %s\n", nameColor.Sprint(r.ThreadName))
	fmt.Fprintf(&b, "last read: %s %s\n", r.LastReadTime, dimColor.Sprintf("(%s)", r.FormattedLastRead))
	return b.String()
}
