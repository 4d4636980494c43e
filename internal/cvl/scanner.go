package cvl

import (
	"regexp"
	"strings"
)

// construct is one top-level statement found by the scanner. Statements that
// are not extractable elements (using, import, use, ...) keep kind KindAny
// and are never indexed.
type construct struct {
	kind     Kind
	key      string
	start    int // 1-based declaration line
	end      int // 1-based last line, inclusive
	docStart int // 1-based first doc-comment line, 0 when absent
}

// slotPattern matches a storage slot pattern or an access path in a hook
// declaration head, e.g. _hasVoted[KEY address voter] or currentContract.x.
var slotPattern = regexp.MustCompile(
	`[A-Za-z_]\w*(\.[A-Za-z_]\w*|\[[^\[\]]*\]|\([^()]*\))*`,
)

var identPrefix = regexp.MustCompile(`^[A-Za-z_]\w*`)

var bareIdent = regexp.MustCompile(`^[A-Za-z_]\w*$`)

// scan walks the document once and returns every top-level statement in file
// order, with doc comments attached.
func scan(doc *Document) []construct {
	var out []construct
	line := 1
	for line <= doc.NumLines() {
		text := strings.TrimSpace(doc.Line(line))
		if text == "" || isCommentLine(text) {
			line++
			continue
		}

		end, head := statementExtent(doc, line)
		c := classify(head)
		c.start = line
		c.end = end
		c.docStart = docCommentStart(doc, line)
		out = append(out, c)
		line = end + 1
	}
	return out
}

func isCommentLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "*/")
}

// statementExtent consumes one top-level statement starting at line start.
// The statement ends at a semicolon outside any brace group, or at the close
// of its last top-level brace group: a closed group followed by another `{`
// belongs to the same statement, as in a rule's filtered clause or an
// invariant's proof block. It also returns the declaration head: the text
// before the first brace, with comments stripped, used for naming the
// construct.
func statementExtent(doc *Document, start int) (end int, head string) {
	depth := 0
	sawBrace := false
	pendingEnd := 0 // line closing a top-level brace group, 0 when none
	inBlockComment := false
	var headBuilder strings.Builder
	headDone := false

	for line := start; line <= doc.NumLines(); line++ {
		text := doc.Line(line)
		i := 0
		for i < len(text) {
			if inBlockComment {
				if idx := strings.Index(text[i:], "*/"); idx >= 0 {
					i += idx + 2
					inBlockComment = false
					continue
				}
				i = len(text)
				continue
			}
			c := text[i]
			if c == '/' && i+1 < len(text) && text[i+1] == '/' {
				i = len(text)
				continue
			}
			if c == '/' && i+1 < len(text) && text[i+1] == '*' {
				inBlockComment = true
				i += 2
				continue
			}
			if pendingEnd > 0 {
				if c == ' ' || c == '\t' {
					i++
					continue
				}
				if c != '{' && c != ';' {
					// The next statement begins here.
					return pendingEnd, headBuilder.String()
				}
				pendingEnd = 0
			}
			switch {
			case c == '"':
				// Skip the string literal.
				j := i + 1
				for j < len(text) && text[j] != '"' {
					if text[j] == '\\' {
						j++
					}
					j++
				}
				if !headDone {
					headBuilder.WriteString(text[i:min(j+1, len(text))])
				}
				i = j + 1
			case c == '{':
				depth++
				sawBrace = true
				headDone = true
				i++
			case c == '}':
				depth--
				if depth <= 0 && sawBrace {
					pendingEnd = line
				}
				i++
			case c == ';' && depth == 0:
				return line, headBuilder.String()
			default:
				if !headDone {
					headBuilder.WriteByte(c)
				}
				i++
			}
		}
		if !headDone {
			headBuilder.WriteByte(' ')
		}
	}
	if pendingEnd > 0 {
		return pendingEnd, headBuilder.String()
	}
	// Unterminated statement, runs to end of file.
	return doc.NumLines(), headBuilder.String()
}

// classify names a construct from its declaration head. Unrecognized
// statements come back with KindAny.
func classify(head string) construct {
	tokens := strings.Fields(head)
	if len(tokens) == 0 {
		return construct{kind: KindAny}
	}

	switch tokens[0] {
	case "methods":
		return construct{kind: KindMethods, key: "methods"}
	case "rule":
		return named(KindRule, tokens)
	case "invariant":
		return named(KindInvariant, tokens)
	case "definition":
		return named(KindDefinition, tokens)
	case "function":
		return named(KindFunction, tokens)
	case "ghost":
		return classifyGhost(tokens[1:])
	case "persistent":
		if len(tokens) > 1 && tokens[1] == "ghost" {
			return classifyGhost(tokens[2:])
		}
	case "hook":
		return classifyHook(tokens[1:])
	}
	return construct{kind: KindAny}
}

func named(kind Kind, tokens []string) construct {
	if len(tokens) < 2 {
		return construct{kind: KindAny}
	}
	name := identPrefix.FindString(tokens[1])
	if name == "" {
		return construct{kind: KindAny}
	}
	return construct{kind: kind, key: name}
}

func classifyGhost(tokens []string) construct {
	if len(tokens) == 0 {
		return construct{kind: KindAny}
	}
	if strings.HasPrefix(tokens[0], "mapping") {
		// The ghost name is the last bare identifier of the head, after the
		// full mapping type.
		for i := len(tokens) - 1; i > 0; i-- {
			if bareIdent.MatchString(tokens[i]) {
				return construct{kind: KindGhostMapping, key: tokens[i]}
			}
		}
		return construct{kind: KindAny}
	}
	if strings.Contains(tokens[0], "(") {
		// Ghost function form: ghost name(args) returns type.
		return construct{kind: KindGhostFunction, key: identPrefix.FindString(tokens[0])}
	}
	// Ghost variable form: ghost type name.
	for i := len(tokens) - 1; i > 0; i-- {
		if bareIdent.MatchString(tokens[i]) {
			return construct{kind: KindGhostFunction, key: tokens[i]}
		}
	}
	return construct{kind: KindAny}
}

func classifyHook(tokens []string) construct {
	if len(tokens) == 0 {
		return construct{kind: KindAny}
	}
	rest := strings.Join(tokens[1:], " ")
	switch tokens[0] {
	case "Sstore":
		// hook Sstore <slot pattern> <type> <new value> [(<type> <old value>)]
		if pattern := slotPattern.FindString(rest); pattern != "" {
			return construct{kind: KindHookSstore, key: pattern}
		}
	case "Sload":
		// hook Sload <type> <value name> <slot pattern>
		combos := slotPattern.FindAllString(rest, -1)
		for len(combos) > 0 && combos[len(combos)-1] == "STORAGE" {
			combos = combos[:len(combos)-1]
		}
		if len(combos) > 0 {
			return construct{kind: KindHookSload, key: combos[len(combos)-1]}
		}
	default:
		// Opcode hooks are keyed by the opcode itself, e.g. hook GASPRICE.
		if opcode := identPrefix.FindString(tokens[0]); opcode != "" {
			return construct{kind: KindHookOpcode, key: opcode}
		}
	}
	return construct{kind: KindAny}
}

// docCommentStart walks backward from the declaration line and returns the
// first line of the attached CVLDoc comment. Both /// runs and /** */ blocks
// count; plain // and /* */ comments do not.
func docCommentStart(doc *Document, declLine int) int {
	line := declLine - 1
	if line < 1 {
		return 0
	}

	trimmed := strings.TrimSpace(doc.Line(line))
	if strings.HasPrefix(trimmed, "///") {
		start := line
		for line >= 1 && strings.HasPrefix(strings.TrimSpace(doc.Line(line)), "///") {
			start = line
			line--
		}
		return start
	}

	if strings.HasSuffix(trimmed, "*/") {
		for ; line >= 1; line-- {
			t := strings.TrimSpace(doc.Line(line))
			if strings.HasPrefix(t, "/**") && !strings.HasPrefix(t, "/***") {
				return line
			}
			if strings.HasPrefix(t, "/*") {
				// A plain block comment is not documentation.
				return 0
			}
		}
	}
	return 0
}
