package cvl

import (
	"fmt"
	"strings"
)

// LookupError reports an element id that did not resolve to exactly one
// element of its document.
type LookupError struct {
	File    string
	ID      ElementID
	Matches int
}

func (e *LookupError) Error() string {
	if e.Matches > 1 {
		return fmt.Sprintf("%d elements match %s in %s", e.Matches, e.ID, e.File)
	}
	return fmt.Sprintf("no element matches %s in %s", e.ID, e.File)
}

// methodsNames are the bare spellings that select the methods block.
var methodsNames = map[string]bool{"methods": true, "Methods": true}

// Locate resolves ids against the document, in request order. Duplicate ids
// resolve independently and repeat in the output. The first id that does not
// resolve to exactly one element fails the whole request with a LookupError;
// no partial result is returned.
func Locate(doc *Document, ids []ElementID) ([]Element, error) {
	constructs := scan(doc)

	elements := make([]Element, 0, len(ids))
	for _, id := range ids {
		var match *construct
		matches := 0
		for i := range constructs {
			if identifies(id, &constructs[i]) {
				match = &constructs[i]
				matches++
			}
		}
		if matches != 1 {
			return nil, &LookupError{File: doc.Path, ID: id, Matches: matches}
		}
		elements = append(elements, Element{
			Kind:         match.kind,
			Key:          match.key,
			StartLine:    match.start,
			EndLine:      match.end,
			DocStartLine: match.docStart,
			doc:          doc,
		})
	}
	return elements, nil
}

// identifies reports whether id selects the construct. Hooks carry no unique
// name, so a bare-name id never matches one.
func identifies(id ElementID, c *construct) bool {
	switch {
	case id.Kind == KindAny:
		if c.kind == KindMethods {
			return methodsNames[id.Key]
		}
		return c.kind.isNamed() && c.key == id.Key
	case id.Kind == KindMethods:
		return c.kind == KindMethods && (methodsNames[id.Key] || id.Key == "")
	default:
		return c.kind == id.Kind && c.key == id.Key
	}
}

// Render joins element texts with spacing blank lines between consecutive
// elements.
func Render(elements []Element, spacing int) string {
	if spacing < 0 {
		spacing = 0
	}
	texts := make([]string, len(elements))
	for i, el := range elements {
		texts[i] = el.Text()
	}
	return strings.Join(texts, strings.Repeat("\n", spacing+1))
}
