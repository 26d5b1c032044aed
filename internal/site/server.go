// Package site serves the document viewer over HTTP and exports it as a
// static site.
package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os/exec"
	"runtime"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/mdview/internal/blocks"
	"github.com/ziadkadry99/mdview/internal/highlight"
	"github.com/ziadkadry99/mdview/internal/logger"
	"github.com/ziadkadry99/mdview/internal/viewer"
)

// Option configures a Site.
type Option func(*Site)

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(s *Site) { s.title = title }
}

// WithHighlighter sets the code highlighter.
func WithHighlighter(hl highlight.Highlighter) Option {
	return func(s *Site) { s.hl = hl }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Site) {
		if l != nil {
			s.log = l
		}
	}
}

// Site exposes a Viewer through HTTP handlers.
type Site struct {
	viewer *viewer.Viewer
	title  string
	hl     highlight.Highlighter
	log    *logger.Logger

	renderer *Renderer
	tmpl     *template.Template
	hub      *Hub
	unsub    func()
}

// New creates a Site for v. Every snapshot v publishes is announced to
// connected browsers.
func New(v *viewer.Viewer, opts ...Option) (*Site, error) {
	s := &Site{
		viewer: v,
		title:  "Documentation",
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	s.tmpl = tmpl
	s.renderer = NewRenderer(s.hl, s.log)
	s.hub = NewHub(s.log)
	s.unsub = v.Subscribe(func(snap viewer.Snapshot) {
		msg := liveMessage{Type: "reload", Blocks: len(snap.Blocks)}
		if snap.Err != nil {
			msg.Error = snap.Err.Error()
		}
		s.hub.Broadcast(msg)
	})
	return s, nil
}

// Hub returns the live-reload hub.
func (s *Site) Hub() *Hub { return s.hub }

// Close stops live notifications and disconnects clients.
func (s *Site) Close() {
	s.unsub()
	s.hub.Close()
}

// RegisterRoutes mounts the page, assets and JSON API.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handlePage)
	r.Get("/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/script.js", serveAsset("application/javascript; charset=utf-8", jsContent))

	r.Route("/api", func(r chi.Router) {
		r.Get("/blocks", s.handleBlocks)
		r.Get("/headings", s.handleHeadings)
		r.Post("/reload", s.handleReload)
		r.Get("/theme", s.handleGetTheme)
		r.Put("/theme", s.handlePutTheme)
	})
}

// RegisterStreams mounts the live-reload WebSocket.
func (s *Site) RegisterStreams(r chi.Router) {
	r.Handle("/ws", s.hub)
}

func (s *Site) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	snap := s.viewer.Snapshot()

	data := s.renderer.page(s.title, q, blocks.Filter(snap.Blocks, q), blocks.Filter(snap.Headings, q))
	data.Dark = s.viewer.Dark()
	data.Live = true
	if snap.Err != nil {
		data.Error = snap.Err.Error()
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		s.log.Error("rendering page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// blocksResponse is the JSON body for /api/blocks and /api/headings.
type blocksResponse struct {
	Query  string         `json:"query,omitempty"`
	Count  int            `json:"count"`
	Blocks []blocks.Block `json:"blocks"`
	Error  string         `json:"error,omitempty"`
}

func (s *Site) handleBlocks(w http.ResponseWriter, r *http.Request) {
	snap := s.viewer.Snapshot()
	s.writeBlocks(w, r.URL.Query().Get("q"), snap.Blocks, snap.Err)
}

func (s *Site) handleHeadings(w http.ResponseWriter, r *http.Request) {
	snap := s.viewer.Snapshot()
	s.writeBlocks(w, r.URL.Query().Get("q"), snap.Headings, snap.Err)
}

func (s *Site) writeBlocks(w http.ResponseWriter, q string, bs []blocks.Block, loadErr error) {
	filtered := blocks.Filter(bs, q)
	resp := blocksResponse{Query: q, Count: len(filtered), Blocks: filtered}
	if loadErr != nil {
		resp.Error = loadErr.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Site) handleReload(w http.ResponseWriter, r *http.Request) {
	// The reload outlives the request so a client that disconnects cannot
	// blank the content for every other reader.
	err := s.viewer.Reload(context.WithoutCancel(r.Context()))
	switch {
	case errors.Is(err, viewer.ErrSuperseded):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case err != nil:
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		snap := s.viewer.Snapshot()
		writeJSON(w, http.StatusOK, map[string]int{
			"blocks":   len(snap.Blocks),
			"headings": len(snap.Headings),
		})
	}
}

// themeBody is the JSON body for /api/theme.
type themeBody struct {
	Dark *bool `json:"dark"`
}

func (s *Site) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	dark := s.viewer.Dark()
	writeJSON(w, http.StatusOK, themeBody{Dark: &dark})
}

func (s *Site) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	var body themeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Dark == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body must be {\"dark\": bool}"})
		return
	}
	s.viewer.SetDark(*body.Dark)
	dark := s.viewer.Dark()
	writeJSON(w, http.StatusOK, themeBody{Dark: &dark})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
