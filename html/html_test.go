package html

import (
	"strings"
	"testing"

	"github.com/npillmayer/augtree/cords"
	"golang.org/x/net/html"
)

func TestTextFromHTML(t *testing.T) {
	input := `<p>Hello <b>bold</b> and <i>italic <u>nested</u></i> world</p>`
	text, err := TextFromHTML(cords.NewStore(), strings.NewReader(input))
	if err != nil {
		t.Fatal(err.Error())
	}
	if text.String() != "Hello bold and italic nested world" {
		t.Errorf("unexpected text %q", text)
	}
	if text.FragmentCount() != 6 {
		t.Errorf("expected one fragment per text node, have %d", text.FragmentCount())
	}
	if err := text.Check(); err != nil {
		t.Error(err)
	}
}

func TestInnerText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><div id="x">a<span>b</span>c</div></body></html>`))
	if err != nil {
		t.Fatal(err.Error())
	}
	text, err := InnerText(cords.NewStore(), doc)
	if err != nil {
		t.Fatal(err.Error())
	}
	if text.String() != "abc" {
		t.Errorf("unexpected inner text %q", text)
	}
	if _, err := InnerText(cords.NewStore(), nil); err != ErrIllegalArguments {
		t.Errorf("expected error for nil node")
	}
}
