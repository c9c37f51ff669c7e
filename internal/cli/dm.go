package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catchup-chat/catchup/internal/tools"
)

func dmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dm <email>",
		Short: "Find your direct-message space with a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			result, err := svc.FindDM(cmd.Context(), tools.FindDMOptions{
				UserEmail: args[0],
			})
			if err != nil {
				return err
			}

			if done, err := emit(result); done || err != nil {
				return err
			}
			fmt.Print(renderDM(result))
			return nil
		},
	}

	return cmd
}
