package htmltree

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/minidom/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestParseFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minidom.htmltree")
	defer teardown()
	//
	f := dom.NewForest()
	doc := f.CreateDocument()
	frag, err := ParseFragment(f, doc, strings.NewReader(`<p>Hello <b>World</b></p><!-- c --><div></div>`))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, c := range f.ChildNodes(frag).Slice() {
		names = append(names, f.NodeName(c))
	}
	if strings.Join(names, ",") != "p,#comment,div" {
		t.Errorf("unexpected top-level nodes: %v", names)
	}
	texts := f.Descendants(frag, dom.NodeIsText)
	if len(texts) != 2 || f.NodeValue(texts[0]) != "Hello " || f.NodeValue(texts[1]) != "World" {
		t.Errorf("expected text nodes 'Hello ' and 'World', have %d", len(texts))
	}
	body := f.CreateElement("body", doc)
	if _, err := f.AppendChild(doc, body); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AppendChild(body, frag); err != nil {
		t.Fatal(err)
	}
	if f.HasChildNodes(frag) {
		t.Error("expected fragment to be empty after splicing, isn't")
	}
	if f.ChildNodes(body).Length() != 3 {
		t.Errorf("expected body to have 3 children, has %d", f.ChildNodes(body).Length())
	}
	for _, h := range f.Descendants(doc, dom.Whatever()) {
		if f.OwnerDocument(h) != doc {
			t.Errorf("expected %s to belong to document", f.String(h))
		}
	}
}

func TestFromHTMLDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minidom.htmltree")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(`<!DOCTYPE html><html><head><title>T</title></head><body><p>x</p></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	f := dom.NewForest()
	doc := f.CreateDocument()
	frag, err := FromHTML(f, doc, h)
	if err != nil {
		t.Fatal(err)
	}
	first := f.FirstChild(frag)
	if f.NodeType(first) != dom.DocumentTypeNode || f.NodeName(first) != "html" {
		t.Errorf("expected doctype as first node, is %s", f.String(first))
	}
	if titles := f.Descendants(frag, dom.NodeHasName("title")); len(titles) != 1 {
		t.Errorf("expected 1 title element, found %d", len(titles))
	}
	if _, err := FromHTML(f, doc, nil); !errors.Is(err, ErrNoHTML) {
		t.Errorf("expected ErrNoHTML for nil node, got %v", err)
	}
}
