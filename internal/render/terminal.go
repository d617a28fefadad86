package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// StyleAuto picks a dark or light style from the terminal background.
const StyleAuto = "auto"

// Display writes md to w styled for a terminal. style is a glamour style
// name ("dark", "light", "notty", ...) or a path to a JSON style file.
func Display(w io.Writer, md, style string, width int) error {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == StyleAuto {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
