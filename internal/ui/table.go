package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

const (
	barFilled = "█"
	barEmpty  = "░"
)

// PrintTable renders data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// Bar draws a text progress bar of the given width filled to fraction.
func Bar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}

	fraction = min(max(fraction, 0), 1)

	filled := int(fraction * float64(width))

	return strings.Repeat(barFilled, filled) +
		strings.Repeat(barEmpty, width-filled)
}
