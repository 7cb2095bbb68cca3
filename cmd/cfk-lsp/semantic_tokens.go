package main

import (
	"bytes"
	"context"

	"github.com/configurik/go-configurik/token"

	"go.lsp.dev/protocol"
)

var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenEnumMember,
	protocol.SemanticTokenOperator,
}

const (
	semComment uint32 = iota
	semString
	semNumber
	semProperty
	semEnumMember
	semOperator
)

// semToken is a highlighted byte range on a single line.
type semToken struct {
	off, end int
	typ      uint32
}

// classify assigns a semantic type to each lexeme. An identifier followed,
// after any trivia, by ":" is a key; any other identifier is a
// discriminator name.
func classify(toks []token.Token) []semToken {
	var res []semToken
	for i := range toks {
		t := &toks[i]
		var typ uint32
		switch t.Type {
		case token.TLineComment, token.TBlockComment:
			typ = semComment
		case token.TString:
			typ = semString
		case token.TNumber:
			typ = semNumber
		case token.TIdent:
			j := i + 1
			for j < len(toks) && toks[j].Type.IsTrivia() {
				j++
			}
			typ = semEnumMember
			if j < len(toks) && toks[j].Type == token.TColon {
				typ = semProperty
			}
		case token.TLCurl, token.TRCurl, token.TLSquare, token.TRSquare, token.TComma, token.TColon:
			typ = semOperator
		default:
			continue
		}
		res = append(res, splitLines(t.Pos.I, t.Bytes, typ)...)
	}
	return res
}

// splitLines breaks a lexeme at newlines, since tokens may not span lines.
func splitLines(off int, d []byte, typ uint32) []semToken {
	var res []semToken
	for {
		j := bytes.IndexByte(d, '\n')
		if j < 0 {
			if len(d) > 0 {
				res = append(res, semToken{off: off, end: off + len(d), typ: typ})
			}
			return res
		}
		if j > 0 {
			res = append(res, semToken{off: off, end: off + j, typ: typ})
		}
		off += j + 1
		d = d[j+1:]
	}
}

// encodeTokens produces the relative encoding of the LSP semantic token
// data for toks within [from, to).
func encodeTokens(li *lineIndex, toks []semToken, from, to int) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, st := range toks {
		if st.end <= from || st.off >= to {
			continue
		}
		start := li.position(st.off)
		end := li.position(st.end)
		deltaLine := start.Line - prevLine
		deltaChar := start.Character
		if deltaLine == 0 {
			deltaChar = start.Character - prevChar
		}
		data = append(data, deltaLine, deltaChar, end.Character-start.Character, st.typ, 0)
		prevLine = start.Line
		prevChar = start.Character
	}
	return data
}

func documentTokens(doc *document) []semToken {
	toks, _ := token.Tokenize(nil, doc.content)
	return classify(toks)
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeTokens(doc.lines, documentTokens(doc), 0, len(doc.content)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	from := doc.lines.offset(params.Range.Start)
	to := doc.lines.offset(params.Range.End)
	return &protocol.SemanticTokens{
		Data: encodeTokens(doc.lines, documentTokens(doc), from, to),
	}, nil
}
