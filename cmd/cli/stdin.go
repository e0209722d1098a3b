package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kcaldas/lineedit/pkg/logging"
	"github.com/mattn/go-isatty"
)

// isTerminal reports whether r is an interactive terminal rather than a pipe
// or redirect
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// echoInput echoes every line of piped input. It logs through the global
// logger.
func echoInput(in io.Reader, out io.Writer) error {
	logger := logging.NewComponentLogger(nil, "stdin")

	lines := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if _, err := fmt.Fprintf(out, echoFormat+"\n", scanner.Text()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		logging.LogError(logger, "failed to read stdin", err, "lines", lines)
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	logger.Debug("piped input echoed", "lines", lines)
	return nil
}
