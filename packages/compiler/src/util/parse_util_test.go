package util

import (
	"testing"
)

func TestParseLocationMoveBy(t *testing.T) {
	file := NewParseSourceFile("ab\ncd\nef", "/src/app.jsx")
	start := NewParseLocation(file, 0, 0, 0)

	moved := start.MoveBy(4)
	if moved.Offset != 4 || moved.Line != 1 || moved.Col != 1 {
		t.Errorf("MoveBy(4) = offset %d line %d col %d, want 4 1 1", moved.Offset, moved.Line, moved.Col)
	}

	back := moved.MoveBy(-4)
	if back.Offset != 0 || back.Line != 0 {
		t.Errorf("MoveBy(-4) = offset %d line %d, want 0 0", back.Offset, back.Line)
	}
}

func TestParseSourceSpanString(t *testing.T) {
	file := NewParseSourceFile("<div>hi</div>", "/src/app.jsx")
	span := NewParseSourceSpan(
		NewParseLocation(file, 0, 0, 0),
		NewParseLocation(file, 5, 0, 5),
		nil,
	)
	if got := span.String(); got != "<div>" {
		t.Errorf("span.String() = %q, want %q", got, "<div>")
	}
}

func TestParseErrorMessages(t *testing.T) {
	bare := NewParseError(nil, "something went wrong")
	if bare.Error() != "something went wrong" {
		t.Errorf("Error() = %q, want the bare message", bare.Error())
	}

	file := NewParseSourceFile("<p><div></div></p>", "/src/app.jsx")
	span := NewParseSourceSpan(
		NewParseLocation(file, 3, 0, 3),
		NewParseLocation(file, 8, 0, 8),
		nil,
	)
	err := NewParseError(span, "invalid nesting")
	msg := err.ContextualMessage()
	if msg == "invalid nesting" {
		t.Error("ContextualMessage() should include surrounding source")
	}
	if err.Level != ParseErrorLevelError {
		t.Errorf("Level = %v, want error level", err.Level)
	}

	warning := NewParseWarning(span, "suspicious attribute")
	if warning.Level != ParseErrorLevelWarning {
		t.Errorf("Level = %v, want warning level", warning.Level)
	}
}
