package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticTokens string

func (s staticTokens) Token() (string, error) { return string(s), nil }

type failingTokens struct{ err error }

func (f failingTokens) Token() (string, error) { return "", f.err }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, staticTokens("tok-123"))
}

func TestGetSpaceReadState(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/v1/users/me/spaces/AAA/spaceReadState" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing X-Request-Id header")
		}
		json.NewEncoder(w).Encode(ReadState{
			Name:         "users/me/spaces/AAA/spaceReadState",
			LastReadTime: "2024-01-15T10:00:00Z",
		})
	})

	state, err := client.GetSpaceReadState(context.Background(), "AAA")
	if err != nil {
		t.Fatalf("GetSpaceReadState: %v", err)
	}
	if state.LastReadTime != "2024-01-15T10:00:00Z" {
		t.Errorf("LastReadTime = %q", state.LastReadTime)
	}
}

func TestUpdateSpaceReadState(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/v1/users/me/spaces/AAA/spaceReadState" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("updateMask"); got != "lastReadTime" {
			t.Errorf("updateMask = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}

		var payload ReadState
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.LastReadTime != "2024-01-15T12:00:00.000Z" {
			t.Errorf("payload lastReadTime = %q", payload.LastReadTime)
		}
		json.NewEncoder(w).Encode(ReadState{LastReadTime: payload.LastReadTime})
	})

	state, err := client.UpdateSpaceReadState(context.Background(), "spaces/AAA", "2024-01-15T12:00:00.000Z")
	if err != nil {
		t.Fatalf("UpdateSpaceReadState: %v", err)
	}
	if state.LastReadTime != "2024-01-15T12:00:00.000Z" {
		t.Errorf("LastReadTime = %q", state.LastReadTime)
	}
}

func TestGetThreadReadState(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/users/me/spaces/AAA/threads/T1/threadReadState" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(ReadState{LastReadTime: "2024-01-10T08:00:00Z"})
	})

	state, err := client.GetThreadReadState(context.Background(), "AAA", "spaces/AAA/threads/T1")
	if err != nil {
		t.Fatalf("GetThreadReadState: %v", err)
	}
	if state.LastReadTime != "2024-01-10T08:00:00Z" {
		t.Errorf("LastReadTime = %q", state.LastReadTime)
	}
}

func TestFindDirectMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/spaces:findDirectMessage" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "users/ana@example.com" {
			t.Errorf("name = %q", got)
		}
		json.NewEncoder(w).Encode(Space{Name: "spaces/DM1", SpaceType: SpaceTypeDirectMessage})
	})

	space, err := client.FindDirectMessage(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("FindDirectMessage: %v", err)
	}
	if space.Name != "spaces/DM1" {
		t.Errorf("Name = %q", space.Name)
	}
}

func TestListAllSpaces(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if got := r.URL.Query().Get("pageSize"); got != "100" {
			t.Errorf("pageSize = %q", got)
		}
		switch r.URL.Query().Get("pageToken") {
		case "":
			json.NewEncoder(w).Encode(ListSpacesResponse{
				Spaces:        []Space{{Name: "spaces/A"}, {Name: "spaces/B"}},
				NextPageToken: "page-2",
			})
		case "page-2":
			json.NewEncoder(w).Encode(ListSpacesResponse{
				Spaces: []Space{{Name: "spaces/C"}},
			})
		default:
			t.Errorf("unexpected pageToken %q", r.URL.Query().Get("pageToken"))
		}
	})

	spaces, err := client.ListAllSpaces(context.Background())
	if err != nil {
		t.Fatalf("ListAllSpaces: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if len(spaces) != 3 {
		t.Fatalf("len(spaces) = %d, want 3", len(spaces))
	}
	if spaces[2].Name != "spaces/C" {
		t.Errorf("spaces[2].Name = %q", spaces[2].Name)
	}
}

func TestListMessages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/spaces/AAA/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("pageSize"); got != "50" {
			t.Errorf("pageSize = %q", got)
		}
		if got := q.Get("orderBy"); got != "createTime desc" {
			t.Errorf("orderBy = %q", got)
		}
		json.NewEncoder(w).Encode(ListMessagesResponse{
			Messages: []Message{{Name: "spaces/AAA/messages/1", Text: "hi"}},
		})
	})

	page, err := client.ListMessages(context.Background(), "AAA", ListMessagesOptions{
		PageSize: 50,
		OrderBy:  "createTime desc",
	})
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(page.Messages) != 1 || page.Messages[0].Text != "hi" {
		t.Errorf("unexpected page: %+v", page)
	}
}

func TestGetUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/users/12345" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(User{Name: "users/12345", DisplayName: "Ana"})
	})

	u, err := client.GetUser(context.Background(), "12345")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if u.DisplayName != "Ana" {
		t.Errorf("DisplayName = %q", u.DisplayName)
	}
}

func TestAPIErrorFromResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"message": "Space not found"}}`))
	})

	_, err := client.GetSpaceReadState(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Message != "Space not found" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestDecodeAPIError(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"nested", `{"error": {"message": "quota exceeded"}}`, "quota exceeded"},
		{"flat", `{"error": "bad token"}`, "bad token"},
		{"raw", `upstream exploded`, "upstream exploded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := decodeAPIError(500, []byte(tt.body))
			if apiErr.Message != tt.want {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.want)
			}
			if apiErr.StatusCode != 500 {
				t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
			}
		})
	}
}

func TestTokenFailureShortCircuits(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	client.tokens = failingTokens{err: errors.New("token expired")}

	_, err := client.ListSpaces(context.Background(), 10, "")
	if err == nil || err.Error() != "token expired" {
		t.Fatalf("err = %v, want token expired", err)
	}
	if calls != 0 {
		t.Errorf("server was called %d times, want 0", calls)
	}
}
