package chat

// Space types as reported by the workspace API.
const (
	SpaceTypeDirectMessage = "DIRECT_MESSAGE"
	SpaceTypeGroupChat     = "GROUP_CHAT"
	SpaceTypeSpace         = "SPACE"
)

// Space represents a chat container: a named room, a group chat or a
// direct-message channel.
type Space struct {
	Name            string `json:"name"`
	DisplayName     string `json:"displayName,omitempty"`
	SpaceType       string `json:"spaceType,omitempty"`
	SingleUserBotDM bool   `json:"singleUserBotDm,omitempty"`
}

// IsDirectMessage reports whether the space is a 1:1 DM channel.
func (s Space) IsDirectMessage() bool {
	return s.SpaceType == SpaceTypeDirectMessage
}

// User identifies a message sender or a workspace member.
type User struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	Type        string `json:"type,omitempty"`
}

// Thread identifies the thread a message belongs to.
type Thread struct {
	Name string `json:"name"`
}

// SpaceRef is the abbreviated space record embedded in messages.
type SpaceRef struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
}

// Message is a message as returned by the workspace API. It is read-only
// on this side; the remote service owns it.
type Message struct {
	Name       string    `json:"name"`
	Text       string    `json:"text,omitempty"`
	CreateTime string    `json:"createTime,omitempty"`
	Sender     *User     `json:"sender,omitempty"`
	Thread     *Thread   `json:"thread,omitempty"`
	Space      *SpaceRef `json:"space,omitempty"`
}

// ReadState is the per-user read marker for a space or thread. An empty
// LastReadTime means the user has never read the resource; callers treat
// it as the earliest representable instant.
type ReadState struct {
	Name         string `json:"name"`
	LastReadTime string `json:"lastReadTime,omitempty"`
}

// ListSpacesResponse is one page of the space listing.
type ListSpacesResponse struct {
	Spaces        []Space `json:"spaces"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

// ListMessagesResponse is one page of a space's message listing.
type ListMessagesResponse struct {
	Messages      []Message `json:"messages"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
}
