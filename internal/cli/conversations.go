package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catchup-chat/catchup/internal/tools"
)

func conversationsCmd() *cobra.Command {
	var maxResults int
	var noDMs bool
	var noSpaces bool

	cmd := &cobra.Command{
		Use:   "conversations",
		Short: "Summarize every conversation with unread messages",
		Long: `Scan all accessible spaces and list the ones with unread messages,
most unread first. Use --no-dms or --no-spaces to narrow the scan.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			includeDMs := !noDMs
			includeSpaces := !noSpaces
			result, err := svc.UnreadConversations(cmd.Context(), tools.UnreadConversationsOptions{
				IncludeDMs:    &includeDMs,
				IncludeSpaces: &includeSpaces,
				MaxResults:    maxResults,
			})
			if err != nil {
				return err
			}

			if done, err := emit(result); done || err != nil {
				return err
			}
			fmt.Print(renderConversations(result))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxResults, "max", 0, "maximum conversations to return (default 20)")
	cmd.Flags().BoolVar(&noDMs, "no-dms", false, "skip direct-message spaces")
	cmd.Flags().BoolVar(&noSpaces, "no-spaces", false, "skip rooms and group chats")
	return cmd
}
