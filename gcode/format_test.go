package gcode

import "testing"

func TestFormatValue(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{90, "90"},
		{10.5, "10.5"},
		{-0.0, "0"},
		{1.0001, "1.0001"},
		{1.00001, "1"}, // below the fixed precision, rounds away
	}
	for _, tc := range cases {
		if got := formatValue(tc.v); got != tc.want {
			t.Errorf("formatValue(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestFormatLineBreaksOnEachCommand(t *testing.T) {
	tokens := []Token{
		Field("G", 21),
		Field("G", 90),
		Field("G", 0), Field("X", 0), Field("Y", 0),
		Field("G", 1), Field("X", 10), Field("Y", 0), Field("F", 300),
		Field("M", 30),
	}
	want := "G21\nG90\nG0 X0 Y0\nG1 X10 Y0 F300\nM30\n"
	if got := string(Format(tokens)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatInlineCommentStaysOnLine(t *testing.T) {
	tokens := []Token{Field("G", 0), NewInlineComment("home"), Field("X", 0), Field("Y", 0)}
	want := "G0(home) X0 Y0\n"
	if got := string(Format(tokens)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatLineCommentOwnLine(t *testing.T) {
	tokens := []Token{Field("G", 0), Field("X", 0), NewComment("rapid home"), Field("G", 1), Field("X", 1)}
	want := "G0 X0\n;rapid home\nG1 X1\n"
	if got := string(Format(tokens)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatEmptyInputProducesEmptyOutput(t *testing.T) {
	if got := Format(nil); len(got) != 0 {
		t.Errorf("got %q, want empty", got)
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	tokens := []Token{Field("G", 1), Field("X", 1.23456), Field("Y", -2.5), Field("F", 300)}
	a := Format(tokens)
	b := Format(tokens)
	if string(a) != string(b) {
		t.Errorf("Format is not deterministic: %q vs %q", a, b)
	}
}
