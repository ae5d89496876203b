package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"redline/internal/ports"
)

func candidateBody(text string) string {
	b, _ := json.Marshal(generateResponse{
		Candidates: []candidate{{Content: candidateContent{Parts: []candidatePart{{Text: text}}}}},
	})
	return string(b)
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/models/gemini-3-flash-preview:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key query param: got %q, want %q", got, "test-key")
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Fatalf("expected a single content part, got %+v", req.Contents)
		}
		if req.Contents[0].Parts[0].Text != "the prompt" {
			t.Errorf("prompt: got %q", req.Contents[0].Parts[0].Text)
		}
		if req.GenerationConfig.Temperature != 0.2 {
			t.Errorf("temperature: got %v, want 0.2", req.GenerationConfig.Temperature)
		}
		if req.GenerationConfig.ResponseMimeType != "application/json" {
			t.Errorf("responseMimeType: got %q", req.GenerationConfig.ResponseMimeType)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(candidateBody(`{"ok":true}`)))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	got, err := c.Generate(context.Background(), "the prompt", 0.2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != `{"ok":true}` {
		t.Errorf("got %q, want candidate text verbatim", got)
	}
}

func TestGenerateCustomModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-2.0-pro:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(candidateBody("hi")))
	}))
	defer srv.Close()

	c := New("k", WithBaseURL(srv.URL), WithModel("gemini-2.0-pro"))
	if _, err := c.Generate(context.Background(), "p", 0.2); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestGenerateRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New("k", WithBaseURL(srv.URL))
	_, err := c.Generate(context.Background(), "p", 0.2)

	var remote *ports.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %T: %v", err, err)
	}
	if remote.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status: got %d, want %d", remote.StatusCode, http.StatusTooManyRequests)
	}
	if remote.Body == "" {
		t.Error("expected response body to be captured in the error")
	}
}

func TestGenerateTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New("k", WithBaseURL(srv.URL))
	_, err := c.Generate(context.Background(), "p", 0.2)

	var transport *ports.TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
}

func TestGenerateDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	c := New("k", WithBaseURL(srv.URL))
	_, err := c.Generate(context.Background(), "p", 0.2)

	var decode *ports.DecodeError
	if !errors.As(err, &decode) {
		t.Fatalf("expected DecodeError, got %T: %v", err, err)
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no candidates", `{"candidates":[]}`},
		{"no parts", `{"candidates":[{"content":{"parts":[]}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New("k", WithBaseURL(srv.URL))
			_, err := c.Generate(context.Background(), "p", 0.2)
			if !errors.Is(err, ports.ErrEmptyResponse) {
				t.Fatalf("expected ErrEmptyResponse, got %v", err)
			}
		})
	}
}
