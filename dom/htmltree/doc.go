/*
Package htmltree builds DOM sub-trees from HTML parse trees.

Overview

Parsing HTML is not the business of package dom. This package takes the output
of golang.org/x/net/html and converts it into nodes of a dom.Forest. The result
is a document fragment, which clients splice into a document with AppendChild
or InsertBefore:

    frag, err := htmltree.ParseFragment(forest, doc, strings.NewReader(`<p>Hello <b>World</b></p>`))
    ...
    forest.AppendChild(body, frag)  // frag is empty afterwards

Element, text, comment and doctype nodes are converted, attributes are
dropped.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minidom.htmltree'.
func tracer() tracing.Trace {
	return tracing.Select("minidom.htmltree")
}
