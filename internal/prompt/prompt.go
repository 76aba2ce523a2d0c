// Package prompt implements the interactive questions asked by spec-kit init.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCancelled is returned when the user quits the selection.
var ErrCancelled = errors.New("selection cancelled")

// Option is one entry of a selection list.
type Option struct {
	Value string // returned when selected
	Label string // shown to the user
}

// Select prints a numbered list to out and reads the answer from in.
// An empty answer picks the first option. "q" cancels.
func Select(in io.Reader, out io.Writer, question string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", errors.New("no options provided")
	}

	fmt.Fprintln(out, question)
	fmt.Fprintln(out)
	for i, opt := range options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, opt.Label)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, "Enter number [1] (or 'q' to cancel): ")

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && response != "") {
		return "", fmt.Errorf("reading response: %w", err)
	}
	response = strings.TrimSpace(strings.ToLower(response))

	switch response {
	case "":
		return options[0].Value, nil
	case "q", "quit", "cancel":
		return "", ErrCancelled
	}

	num, err := strconv.Atoi(response)
	if err != nil || num < 1 || num > len(options) {
		return "", fmt.Errorf("invalid selection: %s", response)
	}
	return options[num-1].Value, nil
}
