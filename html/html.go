/*
Package html creates cords from the textual content of HTML.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"errors"
	"io"

	"github.com/npillmayer/augtree/cords"
	"golang.org/x/net/html"
)

// ErrIllegalArguments signals a missing HTML node.
var ErrIllegalArguments = errors.New("html: illegal arguments")

// InnerText creates a cord of store st for the textual content of an HTML
// element and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(st *cords.Store, n *html.Node) (cords.Cord, error) {
	if n == nil {
		return cords.Cord{}, ErrIllegalArguments
	}
	return collectText(st, n, cords.Cord{})
}

func collectText(st *cords.Store, n *html.Node, text cords.Cord) (cords.Cord, error) {
	if n.Type == html.TextNode && n.Data != "" {
		c, err := st.FromString(n.Data)
		if err != nil {
			return text, err
		}
		text = cords.Concat(text, c)
	}
	var err error
	for c := n.FirstChild; c != nil && err == nil; c = c.NextSibling {
		text, err = collectText(st, c, text)
	}
	return text, err
}

// TextFromHTML creates a cord from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(st *cords.Store, input io.Reader) (cords.Cord, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return cords.Cord{}, err
	}
	var text cords.Cord
	for _, n := range nodes {
		if text, err = collectText(st, n, text); err != nil {
			return cords.Cord{}, err
		}
	}
	return text, nil
}
