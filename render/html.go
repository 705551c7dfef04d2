package render

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/outline/model"
)

// HTML writes the outline as a <nav> element holding the title and a nested
// list of headings. Each entry links to its page with a #page=N fragment,
// which PDF viewers follow.
func HTML(w io.Writer, o *model.Outline) error {
	nav := element(atom.Nav, html.Attribute{Key: "class", Val: "outline"})

	title := element(atom.H1)
	title.AppendChild(textNode(o.Title))
	nav.AppendChild(title)

	if roots := Tree(o.Headings); len(roots) > 0 {
		nav.AppendChild(list(roots))
	}

	if err := html.Render(w, nav); err != nil {
		return fmt.Errorf("render: html: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func list(nodes []*Node) *html.Node {
	ul := element(atom.Ul)
	for _, n := range nodes {
		li := element(atom.Li, html.Attribute{Key: "class", Val: n.Heading.Level.String()})

		a := element(atom.A, html.Attribute{Key: "href", Val: "#page=" + strconv.Itoa(n.Heading.Page)})
		a.AppendChild(textNode(n.Heading.Text))
		li.AppendChild(a)

		if len(n.Children) > 0 {
			li.AppendChild(list(n.Children))
		}
		ul.AppendChild(li)
	}
	return ul
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
