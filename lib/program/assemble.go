package program

import (
	"strings"

	"github.com/samber/lo"

	"igcc/lib/classify"
	"igcc/lib/session"
)

// BoilerplateInclude is the fixed first line of every assembled program.
// The header itself is materialized next to the compiler invocation.
const BoilerplateInclude = `#include "boilerplate.h"`

// Assemble renders the visible lines into one complete translation unit:
// directives first, then free functions, then all statements inside main,
// each group keeping its submission order.
func Assemble(visible []session.SourceLine) string {
	var b strings.Builder

	b.WriteString(BoilerplateInclude)
	b.WriteString("\n\n")

	if directives := textOf(visible, classify.Directive); directives != "" {
		b.WriteString(directives)
		b.WriteString("\n\n")
	}

	if functions := textOf(visible, classify.Function); functions != "" {
		b.WriteString(functions)
		b.WriteString("\n\n")
	}

	b.WriteString("int main(void) {\n")
	if statements := textOf(visible, classify.Statement); statements != "" {
		b.WriteString(indent(statements, "    "))
		b.WriteString("\n")
	}
	b.WriteString("    return 0;\n}\n")

	return CollapseBlankLines(b.String())
}

// UserCode is the `.l` listing: the user's directives and statements, in
// category order, without the assembled scaffolding.
func UserCode(visible []session.SourceLine) string {
	parts := []string{
		textOf(visible, classify.Directive),
		textOf(visible, classify.Statement),
	}
	parts = lo.Filter(parts, func(p string, _ int) bool { return strings.TrimSpace(p) != "" })
	return strings.Join(parts, "\n")
}

// Full is the `.L` listing: the assembled program minus the boilerplate
// include line.
func Full(visible []session.SourceLine) string {
	src := strings.Replace(Assemble(visible), BoilerplateInclude+"\n", "", 1)
	return CollapseBlankLines(strings.TrimLeft(src, "\n"))
}

// CollapseBlankLines reduces every run of consecutive blank lines to a
// single one. Idempotent.
func CollapseBlankLines(src string) string {
	lines := strings.Split(src, "\n")

	result := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if blank && prevBlank {
			continue
		}
		result = append(result, line)
		prevBlank = blank
	}

	return strings.Join(result, "\n")
}

func textOf(visible []session.SourceLine, role classify.Role) string {
	matching := lo.FilterMap(visible, func(l session.SourceLine, _ int) (string, bool) {
		return l.Text, l.Role == role
	})
	return strings.Join(matching, "\n")
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	return prefix + strings.Join(lines, "\n"+prefix)
}
