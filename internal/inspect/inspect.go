// Package inspect renders containers and their read details as text.
package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zoobzio/securevar"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(12)
	indent     = lipgloss.NewStyle().PaddingLeft(2)
)

// Hex renders b as space separated hex bytes, or <nil> / <empty>.
func Hex(b []byte) string {
	switch {
	case b == nil:
		return "<nil>"
	case len(b) == 0:
		return "<empty>"
	}
	return fmt.Sprintf("% x", b)
}

func row(label string, value any) string {
	return labelStyle.Render(label) + " " + fmt.Sprint(value)
}

func section(title string, rows ...string) string {
	return titleStyle.Render(title) + "\n" + indent.Render(strings.Join(rows, "\n"))
}

// Variable renders the state of v.
func Variable[T any](v *securevar.Variable[T]) string {
	data := v.Export()
	return section("object",
		row("empty", v.IsEmpty()),
		row("encrypted", v.IsEncrypted()),
		row("algorithm", v.Algorithm()),
		row("codec", v.ContentType()),
		row("size", len(data)),
		row("data", Hex(data)),
	)
}

// Detail renders the result of a read.
func Detail[T any](d *securevar.Detail[T]) string {
	return section("read",
		row("encrypted", d.Header.Encrypted),
		row("ciphertext", Hex(d.Encrypted)),
		row("encoded", Hex(d.Encoded)),
		row("decoded", fmt.Sprintf("%#v", d.Decoded)),
	)
}

// Fprint writes a titled report of v and d to w. d may be nil.
func Fprint[T any](w io.Writer, title string, v *securevar.Variable[T], d *securevar.Detail[T]) error {
	parts := []string{titleStyle.Render(title + ":"), indent.Render(Variable(v))}
	if d != nil {
		parts = append(parts, indent.Render(Detail(d)))
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "\n"))
	return err
}
