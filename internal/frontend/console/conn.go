// Package console provides line-based terminal input and output for a
// single interactive session.
package console

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Conn reads command lines from an input stream and writes game text to an
// output stream.
type Conn struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewConn wraps the given streams.
//
// Precondition: in and out must be non-nil.
// Postcondition: Returns a Conn ready for reading and writing.
func NewConn(in io.Reader, out io.Writer) *Conn {
	return &Conn{
		reader: bufio.NewReaderSize(in, 4096),
		out:    out,
	}
}

// ReadLine reads a single line of input. The returned line does not include
// the trailing \n or \r\n. A final line without a terminator is returned
// normally; the following call reports io.EOF.
//
// Postcondition: Returns the next line, or ("", io.EOF) once input is exhausted,
// or a non-nil read error.
func (c *Conn) ReadLine() (string, error) {
	var line bytes.Buffer
	for {
		b, err := c.reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && line.Len() > 0 {
				return line.String(), nil
			}
			return line.String(), err
		}

		if b == '\n' {
			break
		}
		if b == '\r' {
			next, err := c.reader.Peek(1)
			if err == nil && len(next) > 0 && next[0] == '\n' {
				_, _ = c.reader.ReadByte()
				break
			}
		}
		line.WriteByte(b)
	}
	return line.String(), nil
}

// Line is one result of ReadLine delivered by Lines.
type Line struct {
	Text string
	Err  error
}

// Lines reads lines on a separate goroutine so a caller can wait on input
// and cancellation together. Each ReadLine result is sent on the returned
// channel; the goroutine stops after the first error or once done is closed.
// A goroutine blocked in a read stays blocked until that read returns.
//
// Precondition: Lines is called at most once per Conn; ReadLine is not called
// concurrently with it.
// Postcondition: The returned channel is closed when the goroutine stops.
func (c *Conn) Lines(done <-chan struct{}) <-chan Line {
	out := make(chan Line)
	go func() {
		defer close(out)
		for {
			select {
			case <-done:
				return
			default:
			}
			text, err := c.ReadLine()
			select {
			case out <- Line{Text: text, Err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return out
}

// Write sends text to the output stream unchanged.
//
// Postcondition: text is written, or a non-nil error is returned.
func (c *Conn) Write(text string) error {
	_, err := io.WriteString(c.out, text)
	return err
}
