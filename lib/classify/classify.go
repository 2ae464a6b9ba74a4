package classify

import (
	"regexp"
)

// Role says where a submitted line belongs in the assembled program.
type Role int

const (
	Statement Role = iota
	Directive
	Function
)

func (r Role) String() string {
	switch r {
	case Directive:
		return "directive"
	case Function:
		return "function"
	default:
		return "statement"
	}
}

// Matches `#include` directives and `using` declarations.
var directiveRE = regexp.MustCompile(`^\s*(#\s*include|using\s)`)

// Matches free function definitions written on a single submitted line or
// block: optional qualifiers, a return type, a name, a parameter list,
// optional trailing qualifiers and the opening body brace.
var functionRE = regexp.MustCompile(
	`^\s*` +
		`(?:(?:static|inline|constexpr|virtual|extern|template\s*<[^>]*>)\s+)*` +
		`(?:\w[\w\s\*&:<>,]*?)\s+` +
		`\w+\s*\([^)]*\)\s*` +
		`(?:const\s*)?(?:noexcept\s*)?(?:override\s*)?(?:final\s*)?` +
		`\{`)

// Classify decides the role of one submitted line. It is a structural
// heuristic: anything that is not recognizably a directive or a function
// definition is a statement.
func Classify(line string) Role {
	switch {
	case directiveRE.MatchString(line):
		return Directive
	case functionRE.MatchString(line):
		return Function
	default:
		return Statement
	}
}
