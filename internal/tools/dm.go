package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/catchup-chat/catchup/internal/chat"
)

// FindDMOptions identifies the user to locate a DM with.
type FindDMOptions struct {
	// UserEmail is the address of the other participant.
	UserEmail string `json:"user_email"`
}

// FindDMResult describes the located direct-message space.
type FindDMResult struct {
	Name            string `json:"name"`
	DisplayName     string `json:"display_name,omitempty"`
	SpaceType       string `json:"space_type"`
	SingleUserBotDM bool   `json:"single_user_bot_dm,omitempty"`
}

// FindDM locates the 1:1 direct-message space shared with a user. The
// upstream answers 404 when no DM exists with that user yet.
func (s *Service) FindDM(ctx context.Context, opts FindDMOptions) (result *FindDMResult, err error) {
	start := time.Now()
	defer func() { observe(ToolFindDM, start, err) }()

	email := strings.TrimSpace(opts.UserEmail)
	if email == "" {
		return nil, ValidationError("user_email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, ValidationError("user_email must be an email address")
	}

	space, err := s.api.FindDirectMessage(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find direct message with %s: %w", email, err)
	}

	spaceType := space.SpaceType
	if spaceType == "" {
		spaceType = chat.SpaceTypeDirectMessage
	}
	return &FindDMResult{
		Name:            space.Name,
		DisplayName:     space.DisplayName,
		SpaceType:       spaceType,
		SingleUserBotDM: space.SingleUserBotDM,
	}, nil
}
