package chat

import "strings"

const (
	spacePrefix  = "spaces/"
	threadPrefix = "threads/"

	// ReadStateUser is the user segment read-state resources are scoped to.
	// The API only exposes read states for the authenticated caller.
	ReadStateUser = "users/me"
)

// NormalizeSpaceName accepts either a bare space ID ("AAQAXL5fJxI") or a
// full resource name ("spaces/AAQAXL5fJxI") and returns the full resource
// name. Normalizing an already-normalized name is a no-op.
func NormalizeSpaceName(space string) string {
	if strings.HasPrefix(space, spacePrefix) {
		return space
	}
	return spacePrefix + space
}

// NormalizeThreadName resolves a thread reference against its space and
// returns the full thread resource name ("spaces/{space}/threads/{thread}").
// The thread may be given as a bare ID, as "threads/{id}", or as a full
// resource name; the space may be bare or full. Idempotent.
func NormalizeThreadName(space, thread string) string {
	if strings.HasPrefix(thread, spacePrefix) {
		return thread
	}
	space = NormalizeSpaceName(space)
	if strings.HasPrefix(thread, threadPrefix) {
		return space + "/" + thread
	}
	return space + "/" + threadPrefix + thread
}

// NormalizeUserName accepts a bare user ID or email and returns the full
// user resource name ("users/{user}").
func NormalizeUserName(user string) string {
	if strings.HasPrefix(user, "users/") {
		return user
	}
	return "users/" + user
}

// SpaceReadStateName builds the read-state resource name for a space:
// "users/me/spaces/{space}/spaceReadState".
func SpaceReadStateName(space string) string {
	return ReadStateUser + "/" + NormalizeSpaceName(space) + "/spaceReadState"
}

// ThreadReadStateName builds the read-state resource name for a thread:
// "users/me/spaces/{space}/threads/{thread}/threadReadState". Only the
// final ID segment of the thread reference is used.
func ThreadReadStateName(space, thread string) string {
	full := NormalizeThreadName(space, thread)
	id := full[strings.LastIndex(full, "/")+1:]
	return ReadStateUser + "/" + NormalizeSpaceName(space) + "/" + threadPrefix + id + "/threadReadState"
}
