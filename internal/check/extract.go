package check

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// Reference is one extension usage found in a documentation page: either a
// role (Role and Text set) or a directive (Directive, Argument and Options
// set).
type Reference struct {
	Page string
	Line int

	Role string
	Text string

	Directive string
	Argument  string
	Options   map[string]string
}

var (
	rolePattern = regexp.MustCompile(":([a-zA-Z][\\w-]*):`([^`]+)`")

	// MyST markdown spells roles as {clink}`...`.
	mystRolePattern = regexp.MustCompile("\\{([a-zA-Z][\\w-]*)\\}`([^`]+)`")

	// reStructuredText: ".. cvlinclude:: path" followed by ":option: value"
	// lines in the directive body.
	rstDirectivePattern = regexp.MustCompile(`^\s*\.\.\s+([\w-]+)::\s*(.*)$`)
	rstOptionPattern    = regexp.MustCompile(`^\s+:([\w-]+):\s*(.*)$`)

	// MyST markdown: "```{cvlinclude} path" with the same option lines.
	mystDirectivePattern = regexp.MustCompile("^\\s*`{3,}\\{([\\w-]+)\\}\\s*(.*)$")
	mystOptionPattern    = regexp.MustCompile(`^:([\w-]+):\s*(.*)$`)
)

// ExtractReferences scans one page for roles and directives. It recognizes
// both reStructuredText and MyST markdown notation; which names matter is
// the caller's concern.
func ExtractReferences(path, page string) ([]Reference, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []Reference
	var pending *Reference // directive whose option lines are still being read
	optionPattern := rstOptionPattern
	rolePatterns := []*regexp.Regexp{rolePattern}
	if strings.HasSuffix(path, ".md") {
		optionPattern = mystOptionPattern
		rolePatterns = append(rolePatterns, mystRolePattern)
	}

	lineNo := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if pending != nil {
			if m := optionPattern.FindStringSubmatch(line); m != nil {
				pending.Options[m[1]] = strings.TrimSpace(m[2])
				continue
			}
			refs = append(refs, *pending)
			pending = nil
		}

		if m := rstDirectivePattern.FindStringSubmatch(line); m != nil {
			pending = &Reference{
				Page:      page,
				Line:      lineNo,
				Directive: m[1],
				Argument:  strings.TrimSpace(m[2]),
				Options:   make(map[string]string),
			}
			continue
		}
		if m := mystDirectivePattern.FindStringSubmatch(line); m != nil {
			pending = &Reference{
				Page:      page,
				Line:      lineNo,
				Directive: m[1],
				Argument:  strings.TrimSpace(m[2]),
				Options:   make(map[string]string),
			}
			continue
		}

		for _, pattern := range rolePatterns {
			for _, m := range pattern.FindAllStringSubmatch(line, -1) {
				refs = append(refs, Reference{
					Page: page,
					Line: lineNo,
					Role: m[1],
					Text: m[2],
				})
			}
		}
	}
	if pending != nil {
		refs = append(refs, *pending)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}
