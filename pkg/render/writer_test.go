package render

import "testing"

func TestWriter(t *testing.T) {
	w := NewWriter("  ")
	w.Open("a {")
	w.Line("b: %d", 1)
	w.Line("")
	w.Indent(func() { w.Line("100%") })
	w.Close("}")
	w.Raw("  raw")

	want := "a {\n  b: 1\n\n    100%\n}\n  raw\n"
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if w.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", w.Len(), len(want))
	}
}

func TestWriterCloseAtTop(t *testing.T) {
	w := NewWriter("\t")
	w.Close("}")
	w.Line("x")
	if got := w.String(); got != "}\nx\n" {
		t.Errorf("got %q", got)
	}
}
