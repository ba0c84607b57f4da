package htmltree

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/minidom/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoHTML is returned if FromHTML is called with a nil HTML node.
var ErrNoHTML = errors.New("no HTML node to convert")

// FromHTML converts the HTML (sub-)tree rooted at h into a new document fragment
// of forest f, owned by document owner. If h is an HTML document node, its
// children are converted, otherwise h itself is.
func FromHTML(f *dom.Forest, owner dom.Handle, h *html.Node) (dom.Handle, error) {
	if h == nil {
		return dom.Null, ErrNoHTML
	}
	frag := f.CreateDocumentFragment(owner)
	var roots []*html.Node
	if h.Type == html.DocumentNode {
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			roots = append(roots, c)
		}
	} else {
		roots = append(roots, h)
	}
	if err := convert(f, owner, frag, roots); err != nil {
		return dom.Null, err
	}
	return frag, nil
}

// ParseFragment parses HTML content in the context of a <body> element and
// returns the resulting nodes as a document fragment owned by owner.
func ParseFragment(f *dom.Forest, owner dom.Handle, r io.Reader) (dom.Handle, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		tracer().Errorf("cannot parse HTML fragment: %v", err)
		return dom.Null, fmt.Errorf("htmltree: %w", err)
	}
	frag := f.CreateDocumentFragment(owner)
	if err := convert(f, owner, frag, nodes); err != nil {
		return dom.Null, err
	}
	return frag, nil
}

// convert appends converted copies of roots and their descendants to parent.
// The HTML tree is walked breadth first with an explicit queue.
func convert(f *dom.Forest, owner, parent dom.Handle, roots []*html.Node) error {
	type job struct {
		src    *html.Node
		parent dom.Handle
	}
	queue := make([]job, 0, len(roots))
	for _, r := range roots {
		queue = append(queue, job{r, parent})
	}
	count := 0
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		n, ok := nodeFor(f, owner, j.src)
		if !ok {
			continue
		}
		if _, err := f.AppendChild(j.parent, n); err != nil {
			return fmt.Errorf("htmltree: %w", err)
		}
		count++
		for c := j.src.FirstChild; c != nil; c = c.NextSibling {
			queue = append(queue, job{c, n})
		}
	}
	tracer().Debugf("converted %d HTML nodes", count)
	return nil
}

// nodeFor creates a detached DOM node for an HTML node. Error nodes and
// nested document nodes are not converted.
func nodeFor(f *dom.Forest, owner dom.Handle, h *html.Node) (dom.Handle, bool) {
	switch h.Type {
	case html.ElementNode:
		return f.CreateElement(h.Data, owner), true
	case html.TextNode:
		return f.CreateTextNode(h.Data, owner), true
	case html.CommentNode:
		return f.CreateComment(h.Data, owner), true
	case html.DoctypeNode:
		return f.CreateNode(dom.DocumentTypeNode, h.Data, "", owner), true
	}
	tracer().Debugf("skipping HTML node of type %d", h.Type)
	return dom.Null, false
}
