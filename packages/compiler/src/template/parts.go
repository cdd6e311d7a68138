package template

import (
	"strings"
)

// ReparsedKind classifies one node position of a template re-parse walk
type ReparsedKind int

const (
	NodeElement ReparsedKind = iota
	NodeMarker
	NodeText
)

// ReparsedNode is one node position found by re-walking compiled literal
// text with the runtime's counting rule: every element, every child marker
// and every maximal text run takes the next index, depth-first.
type ReparsedNode struct {
	Kind ReparsedKind
	Tag  string
}

// Reparse re-walks compiled literal text and returns its node positions in
// index order. A part's recorded index must address the node this walk
// finds at that position; the round-trip property test checks exactly
// that, since a disagreement would be silent runtime corruption rather
// than a compile error.
func Reparse(literal string) []ReparsedNode {
	var nodes []ReparsedNode
	textStart := -1

	flushText := func(end int) {
		if textStart >= 0 && end > textStart {
			nodes = append(nodes, ReparsedNode{Kind: NodeText})
		}
		textStart = -1
	}

	i := 0
	for i < len(literal) {
		if literal[i] != '<' {
			if textStart < 0 {
				textStart = i
			}
			i++
			continue
		}

		if strings.HasPrefix(literal[i:], ChildMarker) {
			flushText(i)
			nodes = append(nodes, ReparsedNode{Kind: NodeMarker})
			i += len(ChildMarker)
			continue
		}

		if i+1 < len(literal) && literal[i+1] == '/' {
			// Closing tags occupy no node position.
			flushText(i)
			i = skipPast(literal, i, '>')
			continue
		}

		flushText(i)
		j := i + 1
		for j < len(literal) && literal[j] != ' ' && literal[j] != '>' && literal[j] != '/' {
			j++
		}
		nodes = append(nodes, ReparsedNode{Kind: NodeElement, Tag: literal[i+1 : j]})
		i = skipAttributes(literal, j)
	}
	flushText(len(literal))
	return nodes
}

// skipAttributes advances past an open tag's attribute list to just after
// its closing `>`, honoring quoted values.
func skipAttributes(literal string, i int) int {
	inQuote := byte(0)
	for i < len(literal) {
		ch := literal[i]
		if inQuote != 0 {
			if ch == inQuote {
				inQuote = 0
			}
		} else if ch == '"' || ch == '\'' {
			inQuote = ch
		} else if ch == '>' {
			return i + 1
		}
		i++
	}
	return i
}

func skipPast(literal string, i int, ch byte) int {
	for i < len(literal) && literal[i] != ch {
		i++
	}
	if i < len(literal) {
		i++
	}
	return i
}
