/*
Package domdbg implements helpers to debug a DOM tree.

Print renders a (sub-)tree as indented text, ToGraphViz as a GraphViz DOT digraph.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/minidom/dom"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
)

// tracer traces with key 'minidom.domdbg'.
func tracer() tracing.Trace {
	return tracing.Select("minidom.domdbg")
}

// Print returns a textual tree view of the sub-tree starting at root.
// Each node is labeled with its handle, name and (shortened) value.
func Print(f *dom.Forest, root dom.Handle) string {
	if !f.Valid(root) {
		return "(empty)\n"
	}
	printer := tp.New()
	branches := map[dom.Handle]tp.Tree{root: printer.AddBranch(f.String(root))}
	f.Walk(root, func(h dom.Handle, depth int) bool {
		if depth == 0 {
			return true
		}
		parent := branches[f.ParentNode(h)]
		if f.HasChildNodes(h) {
			branches[h] = parent.AddBranch(f.String(h))
		} else {
			parent.AddNode(f.String(h))
		}
		return true
	})
	return printer.String()
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type node struct {
	Name      string
	NodeName  string
	NodeValue string
	NodeType  dom.NodeType
}

type edge struct {
	N1, N2 string
}

// ToGraphViz outputs a diagram for a DOM (sub-)tree in GraphViz (DOT) format.
// Text nodes are drawn as boxes showing the beginning of their text, all other
// nodes as ellipses labeled with their node name.
func ToGraphViz(f *dom.Forest, root dom.Handle, w io.Writer) error {
	head, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = head.Execute(w, gparams); err != nil {
		return err
	}
	f.Walk(root, func(h dom.Handle, depth int) bool {
		if err != nil {
			return false
		}
		n := node{
			Name:      nodeName(h),
			NodeName:  f.NodeName(h),
			NodeValue: f.NodeValue(h),
			NodeType:  f.NodeType(h),
		}
		if err = gparams.NodeTmpl.Execute(w, n); err != nil {
			return false
		}
		if depth > 0 {
			err = gparams.EdgeTmpl.Execute(w, edge{nodeName(f.ParentNode(h)), n.Name})
		}
		return err == nil
	})
	if err != nil {
		tracer().Errorf("cannot write DOT output: %v", err)
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodeName(h dom.Handle) string {
	return fmt.Sprintf("node%05d", uint32(h))
}

func shortText(n node) string {
	s := []rune(n.NodeValue)
	if len(s) > 10 {
		s = append(s[:10], []rune("...")...)
	}
	text := strings.NewReplacer(
		"\\", `\\`,
		"\"", `\"`,
		"\n", `\\n`,
		"\t", `\\t`,
		" ", "␣",
	).Replace(string(s))
	return "\"\\\"" + text + "\\\"\""
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .NodeName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
