package cli

import (
	"fmt"
	"io"
)

// Printer writes coloured status lines. Plain drops the escape codes, which
// keeps piped output and tests readable.
type Printer struct {
	Out   io.Writer
	Plain bool
}

func NewPrinter(out io.Writer) Printer {
	return Printer{Out: out}
}

func (p Printer) paint(colour, message string) {
	if p.Plain {
		fmt.Fprintln(p.Out, message)
		return
	}

	fmt.Fprintln(p.Out, colour+message+Reset)
}

func (p Printer) Errorln(message string) {
	p.paint(RedColour, message)
}

func (p Printer) Successln(message string) {
	p.paint(GreenColour, message)
}

func (p Printer) Warningln(message string) {
	p.paint(YellowColour, message)
}

func (p Printer) Magentaln(message string) {
	p.paint(MagentaColour, message)
}

func (p Printer) Blueln(message string) {
	p.paint(BlueColour, message)
}

func (p Printer) Cyanln(message string) {
	p.paint(CyanColour, message)
}

func (p Printer) Grayln(message string) {
	p.paint(GrayColour, message)
}

func (p Printer) Println(message string) {
	fmt.Fprintln(p.Out, message)
}
