// Package cvl locates named elements inside CVL specification files.
//
// It does not parse the CVL grammar. A single linear scan finds top-level
// construct boundaries (rules, invariants, ghosts, definitions, functions,
// hooks and the methods block) together with any CVLDoc comment attached
// above them, which is all the documentation tooling needs.
package cvl

// Kind identifies the construct kind of a CVL element.
type Kind int

const (
	// KindAny marks an id given as a bare name, whose kind is only known
	// after lookup.
	KindAny Kind = iota
	KindRule
	KindInvariant
	KindDefinition
	KindFunction
	KindGhostFunction
	KindGhostMapping
	KindMethods
	KindHookOpcode
	KindHookSload
	KindHookSstore
)

func (k Kind) String() string {
	switch k {
	case KindRule:
		return "Rule"
	case KindInvariant:
		return "Invariant"
	case KindDefinition:
		return "Definition"
	case KindFunction:
		return "Function"
	case KindGhostFunction:
		return "GhostFunction"
	case KindGhostMapping:
		return "GhostMapping"
	case KindMethods:
		return "Methods"
	case KindHookOpcode:
		return "HookOpcode"
	case KindHookSload:
		return "HookSload"
	case KindHookSstore:
		return "HookSstore"
	default:
		return "unknown"
	}
}

// kindNames maps the textual kind tags accepted in keyed ids ("kind:payload")
// back to kinds.
var kindNames = map[string]Kind{
	"Rule":          KindRule,
	"Invariant":     KindInvariant,
	"Definition":    KindDefinition,
	"Function":      KindFunction,
	"GhostFunction": KindGhostFunction,
	"GhostMapping":  KindGhostMapping,
	"Methods":       KindMethods,
	"HookOpcode":    KindHookOpcode,
	"HookSload":     KindHookSload,
	"HookSstore":    KindHookSstore,
}

// KindFromName returns the kind for a textual kind tag.
func KindFromName(name string) (Kind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

// IsHook reports whether the kind is a hook. Hooks carry no unique name and
// are reachable only through keyed ids.
func (k Kind) IsHook() bool {
	return k == KindHookOpcode || k == KindHookSload || k == KindHookSstore
}

// isNamed reports whether elements of this kind are found by their name.
func (k Kind) isNamed() bool {
	switch k {
	case KindRule, KindInvariant, KindDefinition, KindFunction,
		KindGhostFunction, KindGhostMapping:
		return true
	}
	return false
}

// ElementID references a single element inside a spec file. The zero Kind
// (KindAny) means the id was given as a bare name and any named kind, or the
// methods block, may match.
type ElementID struct {
	Kind Kind
	Key  string // element name, opcode, or slot pattern
}

func (id ElementID) String() string {
	if id.Kind == KindAny {
		return id.Key
	}
	return id.Kind.String() + Separator + id.Key
}

// Element is a located element: a contiguous line range inside its document,
// plus the attached CVLDoc comment block when one exists. Lines are 1-based
// and inclusive.
type Element struct {
	Kind      Kind
	Key       string
	StartLine int
	EndLine   int
	// DocStartLine is the first line of the doc comment above the element,
	// or 0 when the element carries no doc comment.
	DocStartLine int

	doc *Document
}

// Span returns the full line range of the element including its doc comment.
func (e Element) Span() (start, end int) {
	start = e.StartLine
	if e.DocStartLine > 0 {
		start = e.DocStartLine
	}
	return start, e.EndLine
}

// Text returns the element source text, doc comment included, without a
// trailing newline.
func (e Element) Text() string {
	start, end := e.Span()
	return e.doc.Text(start, end)
}
