package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/outline/model"
)

// Text writes the title, a blank line and one line per heading, indented
// two spaces per nesting level and followed by its page number.
//
//	Annual Report
//
//	Introduction ... 1
//	  Scope ... 2
func Text(w io.Writer, o *model.Outline) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n\n", o.Title)
	for _, root := range Tree(o.Headings) {
		root.Walk(func(n *Node, depth int) {
			fmt.Fprintf(bw, "%s%s ... %d\n", strings.Repeat("  ", depth), n.Heading.Text, n.Heading.Page)
		})
	}
	return bw.Flush()
}

// markdownEscaper backslash-escapes characters that would start emphasis,
// links or code spans
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"`", "\\`",
)

// Markdown writes the title as a level-one heading followed by a nested
// bullet list of headings.
func Markdown(w io.Writer, o *model.Outline) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n\n", markdownEscaper.Replace(o.Title))
	for _, root := range Tree(o.Headings) {
		root.Walk(func(n *Node, depth int) {
			fmt.Fprintf(bw, "%s- %s (p. %d)\n",
				strings.Repeat("  ", depth), markdownEscaper.Replace(n.Heading.Text), n.Heading.Page)
		})
	}
	return bw.Flush()
}
