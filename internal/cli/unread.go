package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catchup-chat/catchup/internal/tools"
)

func unreadCmd() *cobra.Command {
	var maxResults int
	var noSenders bool

	cmd := &cobra.Command{
		Use:   "unread <space>",
		Short: "List unread messages in a space",
		Long: `List the messages posted to a space since you last read it, newest
first. The space may be given as a bare ID or a full "spaces/..." name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			include := !noSenders
			result, err := svc.UnreadMessages(cmd.Context(), tools.UnreadMessagesOptions{
				SpaceName:         args[0],
				IncludeSenderInfo: &include,
				MaxResults:        maxResults,
			})
			if err != nil {
				return err
			}

			if done, err := emit(result); done || err != nil {
				return err
			}
			fmt.Print(renderUnread(result))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxResults, "max", 0, "maximum messages to return (default 50, capped at 1000)")
	cmd.Flags().BoolVar(&noSenders, "no-senders", false, "skip sender profile lookups")
	return cmd
}
