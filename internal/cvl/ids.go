package cvl

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Separator splits the kind tag from the payload in keyed ids.
const Separator = ":"

// Keyed ids may carry payloads with embedded whitespace, such as
// HookSstore:_hasVoted[KEY address voter], so the option string cannot be
// split on spaces. A key is an identifier, optionally followed by the
// separator, a second identifier and any run of field accesses, bracket
// groups and parenthesis groups.
var keyPattern = regexp.MustCompile(
	`[A-Za-z_]\w*(:[A-Za-z_]\w*((\.[A-Za-z_]\w*)|(\[[^\[\]]*\])|(\([^()]*\)))*)?`,
)

var opensCloses = map[byte]byte{'(': ')', '[': ']'}

// checkParenthesis returns a warning message for the first illegal
// parenthesis in line, or "" when all groups balance.
func checkParenthesis(line string) string {
	var stack []byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if close, ok := opensCloses[c]; ok {
			stack = append(stack, close)
		} else if c == ')' || c == ']' {
			if len(stack) > 0 && stack[len(stack)-1] == c {
				stack = stack[:len(stack)-1]
			} else {
				return fmt.Sprintf("unmatched %c in char %d of option", c, i+1)
			}
		}
	}
	if len(stack) > 0 {
		return fmt.Sprintf("unclosed %c in option", stack[len(stack)-1])
	}
	return ""
}

func isOnlyWhitespace(s string) bool {
	return strings.TrimSpace(s) == ""
}

// boundary reports whether position i in line is a key boundary: the start or
// end of the string, or adjacent to whitespace.
func boundary(line string, i int) bool {
	if i <= 0 || i >= len(line) {
		return true
	}
	return unicode.IsSpace(rune(line[i-1])) || unicode.IsSpace(rune(line[i]))
}

// SplitKeys tokenizes an element-id option string into individual keys.
// Malformed stretches are skipped and reported as warnings rather than
// aborting, matching how the documentation build treats option typos.
func SplitKeys(line string) (keys []string, warnings []string) {
	if msg := checkParenthesis(line); msg != "" {
		warnings = append(warnings, msg)
	}

	var spans [][2]int
	for _, loc := range keyPattern.FindAllStringIndex(line, -1) {
		if boundary(line, loc[0]) && boundary(line, loc[1]) {
			spans = append(spans, [2]int{loc[0], loc[1]})
		}
	}

	start := 0
	for _, span := range spans {
		if gap := line[start:span[0]]; !isOnlyWhitespace(gap) {
			warnings = append(warnings,
				fmt.Sprintf("syntax error in option[%d:%d]: %q", start, span[0], gap))
		}
		keys = append(keys, line[span[0]:span[1]])
		start = span[1]
	}
	if rest := line[start:]; !isOnlyWhitespace(rest) {
		warnings = append(warnings,
			fmt.Sprintf("syntax error in option[%d:]: %q", start, rest))
	}
	return keys, warnings
}

// ParseID parses a single key into an ElementID. Keys are either a bare
// element name or an explicit "kind:payload" pair.
func ParseID(key string) (ElementID, error) {
	if !strings.Contains(key, Separator) {
		return ElementID{Kind: KindAny, Key: key}, nil
	}
	if strings.Count(key, Separator) != 1 {
		return ElementID{}, fmt.Errorf(
			"malformed CVL element identifier %q - use only one %q", key, Separator)
	}

	kindName, payload, _ := strings.Cut(key, Separator)
	kind, ok := KindFromName(kindName)
	if !ok {
		return ElementID{}, fmt.Errorf("unknown kind %q in %q", kindName, key)
	}
	return ElementID{Kind: kind, Key: payload}, nil
}

// ParseIDs tokenizes and parses a whole option string. Tokenization problems
// are returned as warnings; a malformed key or unknown kind tag is an error.
func ParseIDs(line string) ([]ElementID, []string, error) {
	keys, warnings := SplitKeys(line)
	ids := make([]ElementID, 0, len(keys))
	for _, key := range keys {
		id, err := ParseID(key)
		if err != nil {
			return nil, warnings, err
		}
		ids = append(ids, id)
	}
	return ids, warnings, nil
}
