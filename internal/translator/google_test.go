package translator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/linguarelay/linguarelay/internal/segmenter"
)

func TestClient_TranslateUnit_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[["Hola.","Hello.",null,null,10]],null,"en"]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	out := c.TranslateUnit(context.Background(), segmenter.Unit{Text: "Hello."}, "en", "es")

	if out.Failed() {
		t.Fatalf("unexpected failure: %v %q", out.Failure, out.Detail)
	}
	if out.Translated != "Hola." {
		t.Errorf("expected %q, got %q", "Hola.", out.Translated)
	}
}

func TestClient_TranslateUnit_TrailingSpaceReappended(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The endpoint trims trailing whitespace from the source text.
		w.Write([]byte(`[[["Hola.","Hello. "]]]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	out := c.TranslateUnit(context.Background(), segmenter.Unit{Text: "Hello. ", TrailingSpace: true}, "en", "es")

	if out.Failed() {
		t.Fatalf("unexpected failure: %v %q", out.Failure, out.Detail)
	}
	if out.Translated != "Hola. " {
		t.Errorf("expected trailing space restored, got %q", out.Translated)
	}
}

func TestClient_TranslateUnit_QueryParameters(t *testing.T) {
	var q map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query()
		w.Write([]byte(`[[["ok"]]]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	c.TranslateUnit(context.Background(), segmenter.Unit{Text: "¿Qué tal? "}, "es", "en")

	for key, want := range map[string]string{
		"client": "gtx",
		"sl":     "es",
		"tl":     "en",
		"dt":     "t",
		"q":      "¿Qué tal? ",
	} {
		if got := q[key]; len(got) != 1 || got[0] != want {
			t.Errorf("query %s: expected %q, got %v", key, want, got)
		}
	}
}

func TestClient_TranslateUnit_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	out := c.TranslateUnit(context.Background(), segmenter.Unit{Text: "Hello"}, "en", "es")

	if out.Failure != FailureRateLimited {
		t.Errorf("expected FailureRateLimited, got %v", out.Failure)
	}
	if out.Detail == "" {
		t.Error("expected a detail message")
	}
}

func TestClient_TranslateUnit_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	out := c.TranslateUnit(context.Background(), segmenter.Unit{Text: "Hello"}, "en", "es")

	if out.Failure != FailureBadResponse {
		t.Errorf("expected FailureBadResponse, got %v", out.Failure)
	}
}

func TestClient_TranslateUnit_MalformedBody(t *testing.T) {
	bodies := []string{
		"<html>not json</html>",
		"[]",
		`[[]]`,
		`[[[]]]`,
		`[[[42]]]`,
		`{"translated":"wrong shape"}`,
	}
	for _, body := range bodies {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		c := NewClient(server.URL, time.Second)
		out := c.TranslateUnit(context.Background(), segmenter.Unit{Text: "Hello"}, "en", "es")
		server.Close()

		if out.Failure != FailureBadResponse {
			t.Errorf("body %q: expected FailureBadResponse, got %v", body, out.Failure)
		}
	}
}

func TestClient_TranslateUnit_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	c := NewClient(server.URL, time.Second)
	out := c.TranslateUnit(context.Background(), segmenter.Unit{Text: "Hello"}, "en", "es")

	if out.Failure != FailureTransient {
		t.Errorf("expected FailureTransient, got %v", out.Failure)
	}
}

func TestClient_TranslateUnit_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[[["late"]]]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 20*time.Millisecond)
	out := c.TranslateUnit(context.Background(), segmenter.Unit{Text: "Hello"}, "en", "es")

	if out.Failure != FailureTransient {
		t.Errorf("expected FailureTransient on timeout, got %v", out.Failure)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", 0)
	if c.baseURL != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %q", c.baseURL)
	}
	if c.client.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", c.client.Timeout)
	}
}
