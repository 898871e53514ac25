package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"go.uber.org/zap"

	"mintodo/internal/exitcode"
	"mintodo/internal/logging"
)

// Session is an interactive loop: it shows the list, then reads one command
// per line and dispatches it. Every line runs against the dispatcher's store,
// so changes last until the session ends.
type Session struct {
	dispatcher *Dispatcher
	prompt     string
	greeting   string
}

// NewSession creates a session over d. The prompt is printed before each
// line; a non-empty greeting is printed once, above the first list.
func NewSession(d *Dispatcher, prompt, greeting string) *Session {
	return &Session{dispatcher: d, prompt: prompt, greeting: greeting}
}

// Run reads commands from in until quit, exit, EOF or ctx is cancelled.
// Cancellation stops the loop even while it waits for input, and a line that
// arrives after cancellation is not run.
// Command failures are reported and the loop continues.
// Returns the exit code of the session itself.
func (s *Session) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	log := logging.FromContext(ctx)

	if s.greeting != "" {
		fmt.Fprintln(out, s.greeting)
	}
	s.dispatcher.Run(ctx, []string{"list"}, out, errOut)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(ctx, in, lines, readErr)

	for {
		if ctx.Err() != nil {
			return exitcode.Success
		}
		fmt.Fprint(out, s.prompt)

		var raw string
		select {
		case <-ctx.Done():
			return exitcode.Success
		case l, ok := <-lines:
			if !ok {
				return s.finish(out, errOut, <-readErr)
			}
			raw = l
		}
		if ctx.Err() != nil {
			return exitcode.Success
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return exitcode.Success
		}

		code := s.dispatcher.Run(ctx, args, out, errOut)
		log.Debug("line done", zap.String("command", args[0]), zap.Int("code", code))
	}
}

func (s *Session) finish(out, errOut io.Writer, err error) int {
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	fmt.Fprintln(out)
	return exitcode.Success
}

// readLines sends each line of in to lines until EOF or ctx is done, then
// reports the scanner error and closes lines.
func readLines(ctx context.Context, in io.Reader, lines chan<- string, errc chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			errc <- nil
			return
		}
	}
	errc <- scanner.Err()
}
