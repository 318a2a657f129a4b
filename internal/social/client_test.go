package social

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/unmai/unmai/internal/model"
	"github.com/unmai/unmai/internal/worker"
)

func TestClient_SearchRecent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tweets/search/recent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("unexpected auth header %q", auth)
		}
		q := r.URL.Query()
		if got := q.Get("query"); !strings.Contains(got, "has:links") {
			t.Errorf("query missing link filter: %q", got)
		}
		if q.Get("expansions") != "author_id" {
			t.Errorf("expansions = %q", q.Get("expansions"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": "1", "text": "a post", "author_id": "u1",
				 "entities": {"urls": [{"expanded_url": "https://thehindu.com/x"}]}}
			],
			"includes": {"users": [{"id": "u1", "username": "handle", "description": "reporter"}]},
			"meta": {"result_count": 1}
		}`))
	}))
	defer server.Close()

	client := NewClient(model.SocialConfig{
		BearerToken: "test-token",
		BaseURL:     server.URL,
		Timeout:     5 * time.Second,
		SearchLimit: 10,
	}, worker.NewLimiter(100, 10))

	result, err := client.SearchRecent(context.Background(), "flood has:links -is:retweet")
	if err != nil {
		t.Fatalf("SearchRecent: %v", err)
	}
	if len(result.Tweets) != 1 || result.Tweets[0].Text != "a post" {
		t.Errorf("tweets = %+v", result.Tweets)
	}
	user, ok := result.Users["u1"]
	if !ok || user.Username != "handle" {
		t.Errorf("users = %+v", result.Users)
	}
	if result.Tweets[0].Entities.URLs[0].ExpandedURL != "https://thehindu.com/x" {
		t.Errorf("urls = %+v", result.Tweets[0].Entities.URLs)
	}
}

func TestClient_SearchRecent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"title": "Too Many Requests", "detail": "Rate limit exceeded"}`))
	}))
	defer server.Close()

	client := NewClient(model.SocialConfig{
		BearerToken: "t",
		BaseURL:     server.URL,
		Timeout:     5 * time.Second,
	}, nil)

	_, err := client.SearchRecent(context.Background(), "q")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "Rate limit exceeded") {
		t.Errorf("error = %v", err)
	}
}

func TestNewClient_NilWithoutToken(t *testing.T) {
	if c := NewClient(model.SocialConfig{}, nil); c != nil {
		t.Error("expected nil client without a bearer token")
	}
}
