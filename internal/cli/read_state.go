package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catchup-chat/catchup/internal/tools"
)

func markReadCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "mark-read <space>",
		Short: "Mark a space as read",
		Long: `Advance a space's read position so that everything posted up to the
given time (or now) counts as read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			result, err := svc.MarkSpaceRead(cmd.Context(), tools.MarkSpaceReadOptions{
				SpaceName:    args[0],
				LastReadTime: at,
			})
			if err != nil {
				return err
			}

			if done, err := emit(result); done || err != nil {
				return err
			}
			fmt.Print(renderMarkRead(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "read position as an RFC 3339 timestamp (default now)")
	return cmd
}

func stateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state <space>",
		Short: "Show when a space was last read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			result, err := svc.SpaceReadState(cmd.Context(), tools.SpaceReadStateOptions{
				SpaceName: args[0],
			})
			if err != nil {
				return err
			}

			if done, err := emit(result); done || err != nil {
				return err
			}
			fmt.Print(renderState(result))
			return nil
		},
	}

	return cmd
}

func threadStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thread-state <space> <thread>",
		Short: "Show when a thread was last read",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			result, err := svc.ThreadReadState(cmd.Context(), tools.ThreadReadStateOptions{
				SpaceName:  args[0],
				ThreadName: args[1],
			})
			if err != nil {
				return err
			}

			if done, err := emit(result); done || err != nil {
				return err
			}
			fmt.Print(renderThreadState(result))
			return nil
		},
	}

	return cmd
}
