package gcode

// UnitsMM returns the G21 (millimeter units) command.
func UnitsMM() []Token {
	return []Token{Field("G", 21)}
}

// Absolute returns the G90 (absolute distance mode) command.
func Absolute() []Token {
	return []Token{Field("G", 90)}
}

// Relative returns the G91 (relative distance mode) command.
func Relative() []Token {
	return []Token{Field("G", 91)}
}

// ProgramEnd returns the M30 (program end, rewind) command.
func ProgramEnd() []Token {
	return []Token{Field("M", 30)}
}

// RapidMove returns a G0 rapid positioning command to (x, y).
func RapidMove(x, y float64) []Token {
	return []Token{Field("G", 0), Field("X", x), Field("Y", y)}
}

// LinearMove returns a G1 linear interpolation command to (x, y) at the
// given feedrate.
func LinearMove(x, y, feedrate float64) []Token {
	return []Token{Field("G", 1), Field("X", x), Field("Y", y), Field("F", feedrate)}
}

// ArcMove returns a G2 (clockwise, cw=true) or G3 (counter-clockwise)
// circular interpolation command to (x, y) with the given radius and
// feedrate.
func ArcMove(cw bool, x, y, radius, feedrate float64) []Token {
	code := 3.0
	if cw {
		code = 2.0
	}
	return []Token{Field("G", code), Field("X", x), Field("Y", y), Field("R", radius), Field("F", feedrate)}
}
