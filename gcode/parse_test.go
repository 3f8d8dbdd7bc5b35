package gcode

import "testing"

func TestParseSnippetFieldsAndWords(t *testing.T) {
	tokens, err := ParseSnippet("G0 X1 Y2\nM5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Token{Field("G", 0), Field("X", 1), Field("Y", 2), Field("M", 5)}
	if len(tokens) != len(want) {
		t.Fatalf("got %+v, want %+v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestParseSnippetLineComment(t *testing.T) {
	tokens, err := ParseSnippet("; this is a comment\nG0 X1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %+v", tokens)
	}
	if tokens[0].Kind != CommentTok || tokens[0].Inline || tokens[0].Text != "this is a comment" {
		t.Errorf("got %+v", tokens[0])
	}
}

func TestParseSnippetInlineComment(t *testing.T) {
	tokens, err := ParseSnippet("G0 (rapid move) X1 Y2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Token{Field("G", 0), NewInlineComment("rapid move"), Field("X", 1), Field("Y", 2)}
	if len(tokens) != len(want) {
		t.Fatalf("got %+v, want %+v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestParseSnippetUnterminatedInlineComment(t *testing.T) {
	if _, err := ParseSnippet("G0 (oops"); err == nil {
		t.Error("expected an error for an unterminated inline comment")
	}
}

func TestParseSnippetMalformedWord(t *testing.T) {
	if _, err := ParseSnippet("Xabc"); err == nil {
		t.Error("expected an error for a non-numeric word value")
	}
	if _, err := ParseSnippet("1X2"); err == nil {
		t.Error("expected an error for a word that doesn't start with a letter")
	}
}

func TestParseSnippetBlankLinesAndWhitespaceIgnored(t *testing.T) {
	tokens, err := ParseSnippet("\n\n  G0 X1  \n\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %+v", tokens)
	}
}

func TestParseSnippetRoundTripsThroughFormat(t *testing.T) {
	src := "G0 X1 Y2\nG1 X3 Y4 F300"
	tokens, err := ParseSnippet(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Format(tokens)
	reparsed, err := ParseSnippet(string(out))
	if err != nil {
		t.Fatalf("unexpected error reparsing formatted output: %v", err)
	}
	if len(reparsed) != len(tokens) {
		t.Fatalf("got %+v, want %+v", reparsed, tokens)
	}
	for i := range tokens {
		if reparsed[i].Letters != tokens[i].Letters || reparsed[i].HasValue != tokens[i].HasValue {
			t.Errorf("token %d: got %+v, want %+v", i, reparsed[i], tokens[i])
		}
		if tokens[i].HasValue && !approxEqual(reparsed[i].Value, tokens[i].Value) {
			t.Errorf("token %d value: got %v, want %v", i, reparsed[i].Value, tokens[i].Value)
		}
	}
}

func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
