package svgdom

import (
	"strings"
	"testing"
)

func TestParseSimpleDocument(t *testing.T) {
	src := `<svg width="100" height="50"><rect x="1" y="2" width="10" height="20"/></svg>`
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Root.Tag != "svg" {
		t.Fatalf("got root tag %q", doc.Root.Tag)
	}
	if v, ok := doc.Root.Attr("width"); !ok || v != "100" {
		t.Errorf("got width=%q ok=%v", v, ok)
	}
	if len(doc.Root.Children) != 1 || doc.Root.Children[0].Tag != "rect" {
		t.Fatalf("got children %+v", doc.Root.Children)
	}
	rect := doc.Root.Children[0]
	if rect.Parent != doc.Root {
		t.Error("rect's parent should be the svg root")
	}
	if v, ok := rect.Attr("x"); !ok || v != "1" {
		t.Errorf("got x=%q ok=%v", v, ok)
	}
}

func TestAttrOrFallsBackToDefault(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<svg/>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Root.AttrOr("missing", "fallback"); got != "fallback" {
		t.Errorf("got %q", got)
	}
}

func TestIDReturnsEmptyWhenAbsent(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<svg id="outer"><g/></svg>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Root.ID() != "outer" {
		t.Errorf("got %q", doc.Root.ID())
	}
	if doc.Root.Children[0].ID() != "" {
		t.Errorf("got %q, want empty", doc.Root.Children[0].ID())
	}
}

func TestNestedChildrenAndParentLinks(t *testing.T) {
	src := `<svg><g><rect/><circle/></g></svg>`
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := doc.Root.Children[0]
	if len(g.Children) != 2 {
		t.Fatalf("got %+v", g.Children)
	}
	if g.Children[0].Parent != g || g.Children[1].Parent != g {
		t.Error("both rect and circle should have g as their parent")
	}
}

func TestCharDataAccumulates(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<text>hello world</text>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Root.CharData != "hello world" {
		t.Errorf("got %q", doc.Root.CharData)
	}
}

func TestParseEmptyInputErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Error("expected an error for a document with no root element")
	}
}

func TestParseMalformedXMLErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader("<svg><rect></svg>")); err == nil {
		t.Error("expected an error for mismatched tags")
	}
}
