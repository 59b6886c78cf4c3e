// Package io holds the console plumbing for the interactive chat loop.
package io

import (
	"bufio"
	"fmt"
	"io"
)

// Console prints prompts and responses for the interactive session. Every
// write is flushed immediately so the prompt is visible before the program
// blocks on the next line of input.
type Console struct {
	w       io.Writer
	flusher interface{ Flush() error }
}

// NewConsole wraps w. Writers that already flush are used as-is; anything
// else is buffered through bufio so Flush has something to act on.
func NewConsole(w io.Writer) *Console {
	c := &Console{w: w}
	if f, ok := w.(interface{ Flush() error }); ok {
		c.flusher = f
	} else {
		bw := bufio.NewWriter(w)
		c.w = bw
		c.flusher = bw
	}
	return c
}

// Prompt prints the input prompt without a trailing newline.
func (c *Console) Prompt(text string) error {
	_, err := c.write([]byte(text))
	return err
}

// Say prints one response line.
func (c *Console) Say(format string, args ...any) error {
	_, err := c.write([]byte(fmt.Sprintf(format, args...) + "\n"))
	return err
}

// Write satisfies io.Writer so the console can stand in wherever plain
// output is expected.
func (c *Console) Write(p []byte) (int, error) {
	return c.write(p)
}

func (c *Console) write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, c.flusher.Flush()
}
