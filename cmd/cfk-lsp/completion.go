package main

import (
	"context"
	"sort"

	"go.lsp.dev/protocol"
)

// Completion offers the keys and discriminator names already used in the
// document.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.CompletionList{Items: completionItems(doc)}, nil
}

func completionItems(doc *document) []protocol.CompletionItem {
	seen := map[string]protocol.CompletionItemKind{}
	for _, st := range documentTokens(doc) {
		var kind protocol.CompletionItemKind
		switch st.typ {
		case semProperty:
			kind = protocol.CompletionItemKindProperty
		case semEnumMember:
			kind = protocol.CompletionItemKindEnumMember
		default:
			continue
		}
		label := string(doc.content[st.off:st.end])
		if _, ok := seen[label]; !ok {
			seen[label] = kind
		}
	}
	items := make([]protocol.CompletionItem, 0, len(seen))
	for label, kind := range seen {
		items = append(items, protocol.CompletionItem{Label: label, Kind: kind})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Label < items[j].Label
	})
	return items
}
