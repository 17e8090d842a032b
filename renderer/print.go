package renderer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Styles accepted by Print, besides glamour standard style names.
const (
	StyleAuto  = "auto"  // detect the terminal background
	StylePlain = "plain" // print the raw markdown
)

// Print writes md to w, rendered for a terminal in the given style.
func Print(w io.Writer, md string, style string) error {
	if style == StylePlain {
		_, err := fmt.Fprint(w, md)
		return err
	}
	opt := glamour.WithStandardStyle(style)
	if style == StyleAuto || style == "" {
		opt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("cannot create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("cannot render markdown: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}
