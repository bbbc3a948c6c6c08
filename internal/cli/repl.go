// Package cli implements the interactive research loop on stdin/stdout.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/effective-security/netresearcher/callbacks"
	"github.com/effective-security/netresearcher/chatmodel"
	"github.com/effective-security/netresearcher/internal/researcher"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/netresearcher", "cli")

// SessionID is the fixed chat session used by the interactive loop.
const SessionID = "1"

// testQuery is issued by the `test` keyword.
const testQuery = "Please summarize the logical network topology in OVN"

// REPL reads questions from the input stream and prints answers. Exit
// keywords quit/exit/q terminate the loop; EOF and context cancellation exit
// cleanly; any other per-turn error is printed and the loop continues.
type REPL struct {
	res *researcher.Researcher
	pad *callbacks.Scratchpad
	in  io.Reader
	out io.Writer
}

// New returns a REPL over the given streams. pad is optional; when set, a
// short stats line is printed after each turn.
func New(res *researcher.Researcher, pad *callbacks.Scratchpad, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		res: res,
		pad: pad,
		in:  in,
		out: out,
	}
}

// Run processes turns until an exit keyword, EOF, or context cancellation.
func (r *REPL) Run(ctx context.Context) error {
	ctx = chatmodel.WithChatContext(ctx, chatmodel.NewChatContext(SessionID, nil))

	fmt.Fprintln(r.out, "\nType 'quit' to exit")
	fmt.Fprintln(r.out, strings.Repeat("-", 60))

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logger.KV(xlog.WARNING, "reason", "stdin_read", "err", err.Error())
		}
	}()

	for {
		fmt.Fprint(r.out, "\nYou: ")

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out, "\nGoodbye!")
			return nil
		case line, ok = <-lines:
			if !ok {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return nil
			}
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Fprintln(r.out, "Goodbye!")
			return nil
		case "test":
			fmt.Fprintln(r.out, "\nRunning the usage test...")
			input = testQuery
		default:
			fmt.Fprintln(r.out, "\nResearching...")
		}

		r.runTurn(ctx, input)
	}
}

func (r *REPL) runTurn(ctx context.Context, question string) {
	if r.pad != nil {
		r.pad.StartRun(ctx)
	}
	answer, err := r.res.Run(ctx, question)
	var stats *callbacks.RunStats
	if r.pad != nil {
		stats, _ = r.pad.EndRun(ctx)
	}
	if err != nil {
		fmt.Fprintf(r.out, "\nError: %s\n", err.Error())
		return
	}

	fmt.Fprintf(r.out, "\n%s\n", answer)
	if stats != nil {
		fmt.Fprintf(r.out, "\n[messages: %d, tokens: %d, tool calls: %d, duration: %s]\n",
			stats.TotalMessages,
			stats.LLMTotalTokens,
			stats.ToolsCalls,
			stats.Duration.Round(time.Millisecond),
		)
	}
}
