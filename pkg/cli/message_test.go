package cli

import (
	"bytes"
	"testing"
)

func TestPrinterColours(t *testing.T) {
	tests := []struct {
		name  string
		write func(Printer)
		want  string
	}{
		{"Errorln", func(p Printer) { p.Errorln("err") }, RedColour + "err" + Reset + "\n"},
		{"Successln", func(p Printer) { p.Successln("ok") }, GreenColour + "ok" + Reset + "\n"},
		{"Warningln", func(p Printer) { p.Warningln("warn") }, YellowColour + "warn" + Reset + "\n"},
		{"Magentaln", func(p Printer) { p.Magentaln("m") }, MagentaColour + "m" + Reset + "\n"},
		{"Blueln", func(p Printer) { p.Blueln("b") }, BlueColour + "b" + Reset + "\n"},
		{"Cyanln", func(p Printer) { p.Cyanln("c") }, CyanColour + "c" + Reset + "\n"},
		{"Grayln", func(p Printer) { p.Grayln("g") }, GrayColour + "g" + Reset + "\n"},
		{"Println", func(p Printer) { p.Println("plain") }, "plain\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.write(NewPrinter(&buf))

			if got := buf.String(); got != tt.want {
				t.Errorf("%s wrote %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestPlainPrinter(t *testing.T) {
	var buf bytes.Buffer

	Printer{Out: &buf, Plain: true}.Errorln("boom")

	if got := buf.String(); got != "boom\n" {
		t.Fatalf("expected plain output, got %q", got)
	}
}
