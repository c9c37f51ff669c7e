// Package cli implements the catchup command line interface. Commands
// talk to the workspace chat API directly, sharing the tool service with
// the HTTP gateway.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/catchup-chat/catchup/internal/auth"
	"github.com/catchup-chat/catchup/internal/chat"
	"github.com/catchup-chat/catchup/internal/tools"
)

// Flags shared by every subcommand.
var (
	apiURL          string
	credentialsFile string
	jsonOut         bool
	verbose         bool
)

// NewRootCmd assembles the catchup command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catchup",
		Short: "Catch up on unread chat messages from the terminal",
		Long: `catchup answers the question "what did I miss?" for a chat workspace:
unread messages per space, a digest of conversations needing attention,
and read-state management.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultURL := os.Getenv("CHAT_API_URL")
	if defaultURL == "" {
		defaultURL = "https://chat.googleapis.com"
	}
	defaultCreds := os.Getenv("CHAT_CREDENTIALS_FILE")
	if defaultCreds == "" {
		defaultCreds = auth.DefaultTokenPath()
	}

	pf := root.PersistentFlags()
	pf.StringVar(&apiURL, "api-url", defaultURL, "base URL of the chat API")
	pf.StringVar(&credentialsFile, "credentials", defaultCreds, "path to the OAuth token file")
	pf.BoolVar(&jsonOut, "json", false, "print raw JSON results")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log upstream requests")

	root.AddCommand(unreadCmd())
	root.AddCommand(conversationsCmd())
	root.AddCommand(dmCmd())
	root.AddCommand(markReadCmd())
	root.AddCommand(stateCmd())
	root.AddCommand(threadStateCmd())

	return root
}

// newService wires a tool service against the configured API.
func newService() (*tools.Service, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
	if !verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}

	tokens, err := auth.NewFileTokenSource(credentialsFile, logger)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	client := chat.NewClient(apiURL, tokens, chat.WithLogger(logger))
	return tools.NewService(client, logger), nil
}

// emit prints the result as indented JSON when --json is set, reporting
// whether it handled the output.
func emit(result interface{}) (bool, error) {
	if !jsonOut {
		return false, nil
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return false, err
	}
	fmt.Println(string(out))
	return true, nil
}
