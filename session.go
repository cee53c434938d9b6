package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	prompt        = ">>> "
	birthPrompt   = "Enter birth counts (e.g. '3' or '2 3'): "
	survivePrompt = "Enter survival counts (e.g. '2 3'): "
)

// session reads commands line by line and applies them to a game
type session struct {
	*game
	in *bufio.Scanner
}

func newSession(g *game, in io.Reader) *session {
	return &session{game: g, in: bufio.NewScanner(in)}
}

// readLine prints a prompt and returns the next input line; ok is false at end of input
func (s *session) readLine(p string) (line string, ok bool) {
	fmt.Fprint(s.out, p)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *session) printHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  step (s)    → advance one generation")
	fmt.Fprintln(s.out, "  run N (r N) → advance N generations")
	fmt.Fprintln(s.out, "  rules (u)   → update birth/survival sets")
	fmt.Fprintln(s.out, "  show (p)    → print current grid")
	fmt.Fprintln(s.out, "  stats       → print generation, population and status")
	fmt.Fprintln(s.out, "  quit (q)    → exit")
	fmt.Fprintln(s.out)
}

// run drives the session until quit or end of input
func (s *session) run() error {
	fmt.Fprintln(s.out, "Interactive Game of Life (wrap-around).")
	s.printHelp()
	fmt.Fprintln(s.out, "Starting grid:")
	s.display()
	s.displayRules("Current rules")

	for {
		line, ok := s.readLine(prompt)
		if !ok {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, "Goodbye!")
			return s.in.Err()
		}
		if quit := s.execute(strings.Fields(strings.ToLower(line))); quit {
			return nil
		}
	}
}

// execute runs one command and reports whether the session should end
func (s *session) execute(cmd []string) (quit bool) {
	if len(cmd) == 0 {
		return false
	}

	switch cmd[0] {
	case "quit", "q", "exit":
		fmt.Fprintln(s.out, "Goodbye!")
		return true

	case "step", "s":
		s.advance(1)
		s.display()

	case "run", "r":
		n, ok := generations(cmd)
		if !ok {
			s.unknown()
			return false
		}
		s.advance(n)
		fmt.Fprintf(s.out, "After %d generations:\n", n)
		s.display()

	case "show", "p", "print":
		s.display()

	case "rules", "u", "update":
		s.updateRules()

	case "stats":
		s.displayGameStatus()

	case "help", "h", "?":
		s.printHelp()

	default:
		s.unknown()
	}
	return false
}

func (s *session) unknown() {
	fmt.Fprintln(s.out, "Unknown command. Type 'step', 'run N', 'rules', 'show', or 'quit'.")
}

// updateRules prompts for both rule sets and commits them only if both parse
func (s *session) updateRules() {
	birth, _ := s.readLine(birthPrompt)
	survive, _ := s.readLine(survivePrompt)

	rc, err := rules.UpdateConfiguration(s.rules, birth, survive)
	if err != nil {
		fmt.Fprintf(s.out, "%s\n\n", s.au.Red("Invalid input; rules unchanged.").String())
		return
	}
	s.setRules(rc)
	s.displayRules(s.au.Green("Rules updated").String())
}

// generations reads the N of "run N", which must be all digits
func generations(cmd []string) (int, bool) {
	if len(cmd) < 2 || strings.TrimLeft(cmd[1], "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(cmd[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
