package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/ytget/yt-playlist-maker/internal/platform"
)

// Input sources
const (
	StdinPath     = "-"
	PromptText    = "url> "
	PromptBanner  = "Paste YouTube URLs or video IDs, one per line. Finish with an empty line."
	InputLineJoin = "\n"
)

// readInput resolves the URL list from, in order: --file, positional args,
// piped stdin, or an interactive prompt when stdin is a terminal
func readInput(in io.Reader, out io.Writer, file string, args []string) (string, error) {
	switch {
	case file == StdinPath:
		return readAll(in)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, InputLineJoin), nil
	case isTerminal(in):
		return promptInput(out)
	default:
		return readAll(in)
	}
}

func readAll(in io.Reader) (string, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// isTerminal reports whether in is an interactive terminal
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// promptInput reads lines until an empty line, EOF or Ctrl-C
func promptInput(out io.Writer) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: PromptText,
		Stdout: out,
	})
	if err != nil {
		return "", fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(out, PromptBanner)

	var lines []string
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", errors.New("input cancelled")
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if platform.IsBlank(line) {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, InputLineJoin), nil
}
