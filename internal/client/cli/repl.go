package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	help() []string
	Execute(ctx context.Context, cmd string, args []string) error
}

// runREPL starts a simple read–eval–print loop for the newsdesk CLI.
//
// It reads a line from reader, parses the first token as the command and
// hands the rest to a.Execute. "help", "exit" and "quit" are handled here.
// The prompt and command errors go to out.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by commands are printed inline and never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "news> %s > ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help", "?":
			for _, l := range a.help() {
				fmt.Fprintln(out, l)
			}

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			err := a.Execute(ctx, cmd, parts[1:])
			switch {
			case errors.Is(err, errUnknownCommand):
				fmt.Fprintln(out, "Unknown command:", cmd)
			case err != nil:
				fmt.Fprintln(out, "Error:", describe(err))
			}
		}
	}
}
