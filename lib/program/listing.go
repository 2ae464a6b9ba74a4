package program

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// NumberLines prepends right-aligned 1-based line numbers, for the `.l` and
// `.L` listings.
func NumberLines(text string) string {
	lines := strings.Split(text, "\n")
	width := len(strconv.Itoa(len(lines)))

	numbered := lo.Map(lines, func(line string, i int) string {
		return fmt.Sprintf("%*d  %v", width, i+1, line)
	})
	return strings.Join(numbered, "\n")
}

// VisualizeURL builds a pythontutor.com edit-mode link for the given
// program text.
func VisualizeURL(code string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(code), "+", "%20")
	return "https://pythontutor.com/visualize.html#code=" + encoded +
		"&mode=edit&py=cpp_g%2B%2B9.3.0&cumulative=false&heapPrimitives=false&textReferences=false"
}
