package scaffold

import (
	"fmt"
	"sort"
	"strings"
)

// Theme is a selectable documentation theme.
type Theme struct {
	Name        string
	Description string
	ExampleURL  string
}

// DefaultTheme is used when the quickstart is run without --theme.
const DefaultTheme = "furo"

var themes = map[string]Theme{
	"insipid": {
		Name:        "insipid",
		Description: "clean and minimal, light mode only",
		ExampleURL:  "https://sphinx-themes.org/sample-sites/insipid-sphinx-theme/",
	},
	"furo": {
		Name:        "furo",
		Description: "clean customisable theme, light and dark modes",
		ExampleURL:  "https://pradyunsg.me/furo/",
	},
	"piccolo_theme": {
		Name:        "piccolo_theme",
		Description: "minimal, light and dark modes",
		ExampleURL:  "https://sphinx-themes.org/sample-sites/piccolo-theme/",
	},
	"sphinx_rtd_theme": {
		Name:        "sphinx_rtd_theme",
		Description: "Read The Docs theme, light mode only",
		ExampleURL:  "https://sphinx-themes.org/sample-sites/sphinx-rtd-theme/",
	},
	"classic": {
		Name:        "classic",
		Description: "builtin, light mode only",
		ExampleURL:  "https://sphinx-themes.org/sample-sites/default-classic/",
	},
	"sphinxdoc": {
		Name:        "sphinxdoc",
		Description: "builtin, light mode only",
		ExampleURL:  "https://sphinx-themes.org/sample-sites/default-sphinxdoc/",
	},
}

// LookupTheme returns the theme registered under name.
func LookupTheme(name string) (Theme, error) {
	theme, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q, available: %s", name,
			strings.Join(ThemeNames(), ", "))
	}
	return theme, nil
}

// ThemeNames lists the available theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DescribeThemes renders a one-line-per-theme summary for command help.
func DescribeThemes() string {
	var lines []string
	for _, name := range ThemeNames() {
		theme := themes[name]
		lines = append(lines, fmt.Sprintf("%s - %s", theme.Name, theme.Description))
	}
	return strings.Join(lines, "; ")
}
