package extension

import (
	"fmt"
	"strconv"

	"github.com/Certora/docs-infrastructure/internal/include"
)

// DirectiveNameInclude is the directive name for CVL-aware literal includes.
const DirectiveNameInclude = "cvlinclude"

// CVLInclude implements the cvlinclude directive on top of the include
// reader. Directive options map one-to-one onto include.Options; unknown
// options are rejected so typos surface during the build.
type CVLInclude struct {
	reader *include.Reader
}

// NewCVLInclude builds the directive handler.
func NewCVLInclude(reader *include.Reader) *CVLInclude {
	return &CVLInclude{reader: reader}
}

func (c *CVLInclude) Name() string {
	return DirectiveNameInclude
}

func (c *CVLInclude) Run(argument string, options map[string]string, currentDocDir string) (*include.Block, error) {
	opts, err := ParseIncludeOptions(options)
	if err != nil {
		return nil, err
	}
	return c.reader.Read(argument, currentDocDir, opts)
}

// ParseIncludeOptions converts a raw directive option map into include
// options.
func ParseIncludeOptions(options map[string]string) (include.Options, error) {
	var opts include.Options
	for name, value := range options {
		switch name {
		case "cvlobject":
			opts.CVLObject = value
		case "spacing":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return opts, fmt.Errorf("spacing must be a non-negative integer, got %q", value)
			}
			opts.Spacing = &n
		case "lines":
			opts.Lines = value
		case "start-after":
			opts.StartAfter = value
		case "end-before":
			opts.EndBefore = value
		case "dedent":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return opts, fmt.Errorf("dedent must be a non-negative integer, got %q", value)
			}
			opts.Dedent = n
		case "prepend":
			opts.Prepend = value
		case "append":
			opts.Append = value
		case "language":
			opts.Language = value
		case "caption":
			caption := value
			opts.Caption = &caption
		case "emphasize-lines":
			opts.EmphasizeLines = value
		default:
			return opts, fmt.Errorf("unknown option %q", name)
		}
	}
	return opts, nil
}
