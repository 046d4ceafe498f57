// Package ui serves a browser front end for the editor: each session is a
// text field whose tokens, tree and errors are shown after every key.
package ui

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/dhamidi/arith/editor"
	"github.com/tliron/commonlog"
)

//go:embed static templates
var embeddedFS embed.FS

var log = commonlog.GetLogger("arith.ui")

const templateOverlayDir = "ui/templates"

type Server struct {
	sessions   *Sessions
	staticFS   fs.FS
	templates  *template.Template
	mux        *http.ServeMux
	templateFS fs.FS
	funcMap    template.FuncMap
}

func NewServer() (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS(templateOverlayDir, mustSub(embeddedFS, "templates"))

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"caretAtEnd": func(v *View) bool {
			return v.Caret == len(v.Chars)
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		sessions:   NewSessions(),
		staticFS:   staticFS,
		templates:  tmpl,
		mux:        http.NewServeMux(),
		templateFS: templateFS,
		funcMap:    funcMap,
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("POST /sessions", s.handleCreateSession)
	s.mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	s.mux.HandleFunc("POST /sessions/{id}/keys", s.handleKey)
	s.mux.HandleFunc("GET /parse", s.handleParse)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// templateSet returns the templates for one request. When ui/templates
// exists on disk it is reparsed so that edits take effect without a
// restart; otherwise the set parsed at startup is cloned.
func (s *Server) templateSet() (*template.Template, error) {
	if info, err := os.Stat(templateOverlayDir); err == nil && info.IsDir() {
		return template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	}
	return s.templates.Clone()
}

// render executes into a buffer so that a failing template yields a 500
// instead of a truncated page.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := s.templateSet()
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Errorf("render %s: %s", name, err)
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Errorf("write %s: %s", name, err)
	}
}

func (s *Server) renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("encode response: %s", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Sessions []*Session
	}{
		Sessions: s.sessions.List(),
	}
	s.render(w, "index.html", data)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	text, err := formValue(r, "text")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session := s.sessions.Create(text)
	log.Infof("session %s created with %q", session.ID, text)
	http.Redirect(w, r, "/sessions/"+session.ID, http.StatusSeeOther)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.sessions.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	s.respond(w, r, session)
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	session, ok := s.sessions.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	key, err := formValue(r, "key")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !session.HandleKey(key) {
		http.Error(w, fmt.Sprintf("unsupported key %q", key), http.StatusBadRequest)
		return
	}
	log.Debugf("session %s: key %q", session.ID, key)

	if wantsJSON(r) {
		s.respond(w, r, session)
		return
	}
	http.Redirect(w, r, "/sessions/"+session.ID, http.StatusSeeOther)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, session *Session) {
	view, err := session.View()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if wantsJSON(r) {
		s.renderJSON(w, http.StatusOK, view)
		return
	}
	s.render(w, "session.html", view)
}

// handleParse parses q without creating a session.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	view, err := newView(editor.New(r.URL.Query().Get("q")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.renderJSON(w, http.StatusOK, view)
}

// formValue reads a field from a JSON object body or from form data.
func formValue(r *http.Request, name string) (string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return "", fmt.Errorf("invalid JSON: %w", err)
		}
		return body[name], nil
	}
	if err := r.ParseForm(); err != nil {
		return "", fmt.Errorf("invalid form data: %w", err)
	}
	return r.FormValue(name), nil
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

// overlayFS prefers files under primaryPath on disk and falls back to the
// embedded copies.
func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	for _, fsys := range []fs.FS{o.secondary, o.primary} {
		rd, ok := fsys.(fs.ReadDirFS)
		if !ok {
			continue
		}
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}
