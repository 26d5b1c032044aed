package site

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/mdview/internal/viewer"
)

func setupTest(t *testing.T) (*Site, *viewer.Viewer, *stubLoader) {
	t.Helper()

	ld := &stubLoader{blocks: sampleBlocks()}
	v := viewer.New(ld, []string{"doc.md"})
	if err := v.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(v.Close)

	s, err := New(v, WithTitle("Handbook"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(s.Close)
	return s, v, ld
}

func setupRouter(s *Site) chi.Router {
	r := chi.NewRouter()
	s.RegisterStreams(r)
	s.RegisterRoutes(r)
	return r
}

func TestPage(t *testing.T) {
	s, _, _ := setupTest(t)
	r := setupRouter(s)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"<title>Handbook</title>",
		`<h1 id="h-intro" class="block">Intro</h1>`,
		`<h5 id="h-deep" class="block">Deep</h5>`,
		"Hello <strong>world</strong>",
		"x := &lt;1&gt;",
		`href="#h-setup"`,
		`data-live="true"`,
		`data-theme="light"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestPageQueryFilters(t *testing.T) {
	s, _, _ := setupTest(t)
	r := setupRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/?q=setup", nil))
	body := w.Body.String()

	if !strings.Contains(body, `id="h-setup"`) {
		t.Error("matching heading missing")
	}
	if strings.Contains(body, `id="h-intro"`) {
		t.Error("non-matching heading should be filtered out")
	}
	if !strings.Contains(body, `id="no-matches" hidden`) {
		t.Error("no-matches message should be hidden when headings match")
	}
}

func TestPageNoMatches(t *testing.T) {
	s, _, _ := setupTest(t)
	r := setupRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/?q=nothing-here", nil))
	body := w.Body.String()

	if strings.Contains(body, `id="no-matches" hidden`) {
		t.Error("no-matches message should be visible")
	}
	if !strings.Contains(body, "nothing-here") {
		t.Error("query should be echoed in the no-matches message")
	}
}

func TestAssets(t *testing.T) {
	s, _, _ := setupTest(t)
	r := setupRouter(s)

	for path, ctype := range map[string]string{"/style.css": "text/css", "/script.js": "application/javascript"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), ctype) {
			t.Errorf("%s: content type = %q", path, w.Header().Get("Content-Type"))
		}
	}
}

func TestScriptFiltersOnBlockContent(t *testing.T) {
	for _, want := range []string{`"search-index.json"`, `"api/blocks"`, "contentIndex[el.id]"} {
		if !strings.Contains(jsContent, want) {
			t.Errorf("script.js missing %s", want)
		}
	}
	if strings.Contains(jsContent, "innerHTML") {
		t.Error("script.js should not match queries against rendered markup")
	}
}

func TestAPIBlocks(t *testing.T) {
	s, _, _ := setupTest(t)
	r := setupRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/blocks", nil))
	var resp blocksResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != len(sampleBlocks()) {
		t.Errorf("count = %d, want %d", resp.Count, len(sampleBlocks()))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/blocks?q=WORLD", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 1 || resp.Blocks[0].ID != "p-1" {
		t.Errorf("filtered blocks = %+v", resp.Blocks)
	}
}

func TestAPIHeadings(t *testing.T) {
	s, _, _ := setupTest(t)
	r := setupRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/headings", nil))
	var resp blocksResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 3 {
		t.Errorf("headings = %d, want 3", resp.Count)
	}
	for _, b := range resp.Blocks {
		if !b.IsHeading() {
			t.Errorf("non-heading returned: %+v", b)
		}
	}
}

func TestAPIReload(t *testing.T) {
	s, _, ld := setupTest(t)
	r := setupRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/reload", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ld.callCount() != 2 {
		t.Errorf("loader calls = %d, want 2", ld.callCount())
	}
}

func TestAPIReloadDetachedFromRequest(t *testing.T) {
	s, v, _ := setupTest(t)
	r := setupRouter(s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest("POST", "/api/reload", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	snap := v.Snapshot()
	if len(snap.Blocks) != len(sampleBlocks()) || snap.Err != nil {
		t.Errorf("snapshot blocks=%d err=%v after dropped request", len(snap.Blocks), snap.Err)
	}
}

func TestAPIReloadFailure(t *testing.T) {
	s, v, ld := setupTest(t)
	r := setupRouter(s)

	ld.set(nil, errors.New("fetch doc.md: 404"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/reload", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	if len(v.Snapshot().Blocks) != 0 {
		t.Error("failed reload should leave no blocks")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/blocks", nil))
	var resp blocksResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 0 || resp.Error == "" {
		t.Errorf("blocks after failure = %+v", resp)
	}
}

func TestAPITheme(t *testing.T) {
	s, v, _ := setupTest(t)
	r := setupRouter(s)

	req := httptest.NewRequest("PUT", "/api/theme", strings.NewReader(`{"dark":true}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !v.Dark() {
		t.Error("theme should be dark after PUT")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/theme", nil))
	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body["dark"] {
		t.Errorf("GET theme = %v", body)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if !strings.Contains(w.Body.String(), `data-theme="dark"`) {
		t.Error("page should render with the dark theme")
	}
}

func TestAPIThemeBadRequest(t *testing.T) {
	s, _, _ := setupTest(t)
	r := setupRouter(s)

	for _, body := range []string{"not json", "{}"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("PUT", "/api/theme", strings.NewReader(body)))
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
		}
	}
}

func TestWebSocketReloadNotification(t *testing.T) {
	s, v, _ := setupTest(t)
	server := httptest.NewServer(setupRouter(s))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	deadline := time.Now().Add(2 * time.Second)
	for s.Hub().Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := v.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg liveMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != "reload" || msg.Blocks != len(sampleBlocks()) {
		t.Errorf("message = %+v", msg)
	}
}

func TestHubCloseDisconnects(t *testing.T) {
	hub := NewHub(nil)
	server := httptest.NewServer(hub)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	hub.Close()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected the connection to be closed")
	}
	if hub.Clients() != 0 {
		t.Errorf("clients after Close = %d", hub.Clients())
	}
}
