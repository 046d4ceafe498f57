package ui

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/dhamidi/arith/editor"
	"github.com/dhamidi/arith/format"
	"github.com/dhamidi/arith/parser"
)

// Session is one editor in the browser. Keys are applied in arrival order.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu     sync.Mutex
	editor *editor.Editor
}

// HandleKey applies key to the session's editor and reports whether it was
// understood.
func (s *Session) HandleKey(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.HandleKey(key)
}

// CharView is one character of the text field.
type CharView struct {
	Value  string `json:"value"`
	Edited bool   `json:"edited"`
	Caret  bool   `json:"caret"`
}

// View is a snapshot of a session for rendering.
type View struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Caret    int            `json:"caret"`
	Edited   []bool         `json:"edited"`
	Chars    []CharView     `json:"-"`
	Render   string         `json:"render"`
	Tokens   []parser.Token `json:"tokens"`
	Tree     parser.Node    `json:"tree"`
	TreeText string         `json:"-"`
	Errors   []*parser.Leaf `json:"errors"`
	Mermaid  string         `json:"mermaid"`
}

func (s *Session) View() (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, err := newView(s.editor)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", s.ID, err)
	}
	view.ID = s.ID
	return view, nil
}

func newView(e *editor.Editor) (*View, error) {
	tree := e.Tree()

	mermaid, err := format.NewMermaidEncoder(nil).MarshalText(tree)
	if err != nil {
		return nil, fmt.Errorf("mermaid: %w", err)
	}

	edited := e.Edited()
	runes := []rune(e.Text())
	chars := make([]CharView, len(runes))
	for i, r := range runes {
		chars[i] = CharView{Value: string(r), Edited: edited[i], Caret: i == e.Caret()}
	}

	errors := e.Errors()
	if errors == nil {
		errors = []*parser.Leaf{}
	}
	tokens := e.Tokens()
	if tokens == nil {
		tokens = []parser.Token{}
	}

	return &View{
		Text:     e.Text(),
		Caret:    e.Caret(),
		Edited:   edited,
		Chars:    chars,
		Render:   e.Render(),
		Tokens:   tokens,
		Tree:     tree,
		TreeText: tree.String(),
		Errors:   errors,
		Mermaid:  string(mermaid),
	}, nil
}

// Sessions is an in-memory session store.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	nextID   int
}

func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[string]*Session)}
}

// Create starts a session editing text.
func (s *Sessions) Create(text string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	session := &Session{
		ID:        strconv.Itoa(s.nextID),
		CreatedAt: time.Now(),
		editor:    editor.New(text),
	}
	s.sessions[session.ID] = session
	return session
}

func (s *Sessions) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// List returns all sessions, oldest first.
func (s *Sessions) List() []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		a, _ := strconv.Atoi(sessions[i].ID)
		b, _ := strconv.Atoi(sessions[j].ID)
		return a < b
	})
	return sessions
}
