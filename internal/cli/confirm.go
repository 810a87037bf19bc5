package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

var _ dispatch.Confirmer = (*terminalConfirmer)(nil)

// terminalConfirmer prompts on the terminal. Without a terminal on stdin
// nothing can be confirmed, so every prompt is declined.
type terminalConfirmer struct {
	in  *os.File
	out io.Writer
}

func (c *terminalConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.in == nil || !term.IsTerminal(int(c.in.Fd())) {
		fmt.Fprintln(c.out, pterm.Warning.Sprint("stdin is not a terminal, cannot confirm: "+prompt+" (use --force)"))
		return false, nil
	}

	type answer struct {
		ok  bool
		err error
	}
	answers := make(chan answer, 1)
	go func() {
		ok, err := pterm.DefaultInteractiveConfirm.
			WithDefaultText(prompt).
			WithDefaultValue(false).
			Show()
		answers <- answer{ok: ok, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-answers:
		return a.ok, a.err
	}
}
