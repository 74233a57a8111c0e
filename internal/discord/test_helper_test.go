package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RecCross_Go/internal/recnet"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a fake rec.net backend and a Discord session whose REST
// calls are captured instead of sent.
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	Resolver     *recnet.Resolver
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu        sync.Mutex
	Responses []*discordgo.InteractionResponse
	Edits     []*discordgo.WebhookEdit

	// RejectEdits makes the next n webhook edits fail with 400 Invalid Form Body
	RejectEdits int
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Server:  server,
		Mux:     mux,
		Session: session,
		Resolver: recnet.NewResolver(recnet.Config{
			APIBaseURL:  server.URL + "/api/players",
			SiteBaseURL: server.URL,
		}),
	}

	ctx.DiscordMocks = &MockRoundTripper{RoundTripFunc: ctx.capture}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	t.Cleanup(func() {
		server.Close()
	})

	return ctx
}

// capture records interaction callbacks (POST) and webhook edits (PATCH)
func (c *TestContext) capture(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if req.Body != nil {
		switch req.Method {
		case http.MethodPost:
			var body discordgo.InteractionResponse
			if err := json.NewDecoder(req.Body).Decode(&body); err == nil {
				c.Responses = append(c.Responses, &body)
			}
		case http.MethodPatch:
			var body discordgo.WebhookEdit
			if err := json.NewDecoder(req.Body).Decode(&body); err == nil {
				c.Edits = append(c.Edits, &body)
			}
			if c.RejectEdits > 0 {
				c.RejectEdits--
				return &http.Response{
					StatusCode: http.StatusBadRequest,
					Status:     "400 Bad Request",
					Body:       io.NopCloser(bytes.NewBufferString(`{"code":50035,"message":"Invalid Form Body"}`)),
					Header:     make(http.Header),
					Request:    req,
				}, nil
			}
		}
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     make(http.Header),
	}, nil
}

// LastEdit returns the most recent webhook edit, or nil
func (c *TestContext) LastEdit() *discordgo.WebhookEdit {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Edits) == 0 {
		return nil
	}
	return c.Edits[len(c.Edits)-1]
}

// HandlePrimary mocks the profile API
func (c *TestContext) HandlePrimary(status int, body string) {
	c.Mux.HandleFunc("/api/players/profiles/v1/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// HandlePage mocks the public user page
func (c *TestContext) HandlePage(status int, body string) {
	c.Mux.HandleFunc("/user/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// recInteraction builds a /rec invocation for username
func recInteraction(username string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "rec",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name:  OptionUsername,
						Type:  discordgo.ApplicationCommandOptionString,
						Value: username,
					},
				},
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "123", Username: "Tester"},
			},
		},
	}
}

// stubResolver returns a fixed result or error
type stubResolver struct {
	result recnet.Result
	err    error
	calls  int
}

func (s *stubResolver) Resolve(_ context.Context, _ string) (recnet.Result, error) {
	s.calls++
	return s.result, s.err
}

func fieldValue(embed *discordgo.MessageEmbed, name string) (string, bool) {
	for _, f := range embed.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}
