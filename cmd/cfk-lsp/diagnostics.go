package main

import (
	"context"

	"github.com/configurik/go-configurik/debug"
	"github.com/configurik/go-configurik/parse"

	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := validateDocument(doc)
	if debug.LSP() {
		debug.Logf("diagnostics %s v%d: %d\n", doc.uri, doc.version, len(diagnostics))
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(doc.uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Code:     parse.ErrorKind(doc.err),
		Message:  doc.err.Error(),
		Source:   "cfk",
	}
	if pos, ok := parse.Position(doc.err); ok {
		start := doc.lines.position(pos.I)
		end := doc.lines.position(pos.I + 1)
		if end.Line != start.Line || pos.I >= len(doc.content) {
			end = start
		}
		diagnostic.Range = protocol.Range{Start: start, End: end}
	}
	return append(diagnostics, diagnostic)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	old := s.docs.get(string(params.TextDocument.URI))
	if old == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
