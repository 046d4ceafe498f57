// Package lsp serves arithmetic documents over the Language Server
// Protocol: every open document is reparsed on change and its error leaves
// are published as diagnostics.
package lsp

import (
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "arith"

var log = commonlog.GetLogger("arith.lsp")

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu        sync.Mutex
	documents map[protocol.DocumentUri]*Document
}

func NewServer(version string) *Server {
	ls := &Server{
		version:   version,
		documents: make(map[protocol.DocumentUri]*Document),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) RunTCP(address string) error {
	return ls.server.RunTCP(address)
}

// Document returns the open document for uri, or nil.
func (ls *Server) Document(uri protocol.DocumentUri) *Document {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.documents[uri]
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindIncremental),
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("%s %s ready", lsName, ls.version)
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	item := params.TextDocument
	doc := ls.open(item.URI, item.Version, item.Text)
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc, err := ls.change(params.TextDocument.URI, params.TextDocument.Version, params.ContentChanges)
	if err != nil {
		log.Errorf("%s: %s", params.TextDocument.URI, err)
		return err
	}
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	ls.close(uri)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	doc, ok := ls.documents[params.TextDocument.URI]
	if !ok {
		return nil, nil
	}
	return doc.Hover(params.Position), nil
}

func (ls *Server) open(uri protocol.DocumentUri, version protocol.Integer, text string) *Document {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	doc := NewDocument(uri, version, text)
	ls.documents[uri] = doc
	log.Debugf("opened %s", uri)
	return doc
}

// change applies content changes to an open document. A change for a
// document that was never opened starts from empty text.
func (ls *Server) change(uri protocol.DocumentUri, version protocol.Integer, changes []any) (*Document, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	doc, ok := ls.documents[uri]
	if !ok {
		doc = NewDocument(uri, version, "")
		ls.documents[uri] = doc
	}
	if err := doc.Apply(changes); err != nil {
		return nil, err
	}
	doc.Version = version
	log.Debugf("changed %s to version %d", uri, version)
	return doc, nil
}

func (ls *Server) close(uri protocol.DocumentUri) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	delete(ls.documents, uri)
	log.Debugf("closed %s", uri)
}

func (ls *Server) publish(ctx *glsp.Context, doc *Document) {
	ls.mu.Lock()
	params := protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     uintegerPtr(doc.Version),
		Diagnostics: doc.Diagnostics(),
	}
	ls.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, params)
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}

func uintegerPtr(version protocol.Integer) *protocol.UInteger {
	v := protocol.UInteger(max(version, 0))
	return &v
}
