package chat

import "testing"

func TestNormalizeSpaceName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AAQAXL5fJxI", "spaces/AAQAXL5fJxI"},
		{"spaces/AAQAXL5fJxI", "spaces/AAQAXL5fJxI"},
	}
	for _, tt := range tests {
		if got := NormalizeSpaceName(tt.in); got != tt.want {
			t.Errorf("NormalizeSpaceName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeThreadName(t *testing.T) {
	tests := []struct {
		space  string
		thread string
		want   string
	}{
		{"AAA", "T123", "spaces/AAA/threads/T123"},
		{"spaces/AAA", "T123", "spaces/AAA/threads/T123"},
		{"AAA", "threads/T123", "spaces/AAA/threads/T123"},
		{"AAA", "spaces/BBB/threads/T123", "spaces/BBB/threads/T123"},
		{"AAA", "spaces/AAA/threads/T123", "spaces/AAA/threads/T123"},
	}
	for _, tt := range tests {
		if got := NormalizeThreadName(tt.space, tt.thread); got != tt.want {
			t.Errorf("NormalizeThreadName(%q, %q) = %q, want %q", tt.space, tt.thread, got, tt.want)
		}
	}
}

func TestNormalizeUserName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12345", "users/12345"},
		{"ana@example.com", "users/ana@example.com"},
		{"users/12345", "users/12345"},
	}
	for _, tt := range tests {
		if got := NormalizeUserName(tt.in); got != tt.want {
			t.Errorf("NormalizeUserName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpaceReadStateName(t *testing.T) {
	want := "users/me/spaces/AAA/spaceReadState"
	if got := SpaceReadStateName("AAA"); got != want {
		t.Errorf("SpaceReadStateName(AAA) = %q, want %q", got, want)
	}
	if got := SpaceReadStateName("spaces/AAA"); got != want {
		t.Errorf("SpaceReadStateName(spaces/AAA) = %q, want %q", got, want)
	}
}

func TestThreadReadStateName(t *testing.T) {
	tests := []struct {
		space  string
		thread string
		want   string
	}{
		{"AAA", "T123", "users/me/spaces/AAA/threads/T123/threadReadState"},
		{"spaces/AAA", "threads/T123", "users/me/spaces/AAA/threads/T123/threadReadState"},
		{"AAA", "spaces/AAA/threads/T123", "users/me/spaces/AAA/threads/T123/threadReadState"},
	}
	for _, tt := range tests {
		if got := ThreadReadStateName(tt.space, tt.thread); got != tt.want {
			t.Errorf("ThreadReadStateName(%q, %q) = %q, want %q", tt.space, tt.thread, got, tt.want)
		}
	}
}
