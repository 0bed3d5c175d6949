package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

// interactive runs solutions named at a prompt until EOF. Stdin belongs to
// the prompt, so inputs must come from --input or the input directory.
func (r *runner) interactive() error {
	if r.opts.input == "" && r.cfg.inputDir == "" {
		return errors.New("interactive mode needs --input or ADVENT_INPUT_DIR")
	}
	var items []readline.PrefixCompleterInterface
	for _, name := range solutionNames() {
		items = append(items, readline.PcItem(name))
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:       "advent> ",
		HistoryFile:  filepath.Join(os.TempDir(), "advent_history.txt"),
		AutoComplete: readline.NewPrefixCompleter(items...),
		Stdout:       r.out,
		Stderr:       r.errOut,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	fmt.Fprintf(r.out, "using %s; enter solution names, ^D to quit\n", r)
	return r.prompt(l)
}

type lineReader interface {
	Readline() (string, error)
}

func (r *runner) prompt(l lineReader) error {
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		for _, name := range strings.Fields(line) {
			if err := r.run(name); err != nil && !errors.Is(err, errMismatch) {
				log.Println(err)
			}
		}
	}
}

// String describes where the runner reads input from.
func (r *runner) String() string {
	if r.opts.input != "" {
		return fmt.Sprintf("input %s", r.opts.input)
	}
	return fmt.Sprintf("inputs in %s", r.cfg.inputDir)
}
