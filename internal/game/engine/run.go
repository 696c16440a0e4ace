package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/eldara/internal/frontend/console"
)

// Intro returns the startup banner followed by the command menu.
func (g *Game) Intro() string {
	return g.render.Banner() + g.render.Menu(g.registry.Commands())
}

// Run drives the read loop: render the room unless the previous command was
// look, prompt, read one line, execute it. End of input and context
// cancellation are treated as quit; cancellation is noticed while waiting for
// input, and a line that arrives after it is not executed. Read errors other
// than io.EOF are logged and also end the session.
//
// Precondition: in and out must be non-nil.
// Postcondition: Returns nil when the session ends normally, or a non-nil
// error if writing to out fails.
func (g *Game) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	conn := console.NewConn(in, out)
	done := make(chan struct{})
	defer close(done)
	lines := conn.Lines(done)

	looked := false
	for {
		if err := ctx.Err(); err != nil {
			return g.cancelled(conn, err)
		}
		if !looked {
			if err := g.write(conn, g.render.Enter(g.Room())); err != nil {
				return err
			}
		}
		if err := g.write(conn, g.render.Prompt()); err != nil {
			return err
		}

		var line console.Line
		select {
		case <-ctx.Done():
			return g.cancelled(conn, ctx.Err())
		case line = <-lines:
		}
		if line.Err != nil {
			if !errors.Is(line.Err, io.EOF) {
				g.logger.Warn("reading command", zap.Error(line.Err))
			} else {
				g.logger.Info("end of input", zap.Int("moves", g.hero.Moves))
			}
			return g.write(conn, g.render.Farewell())
		}
		if ctx.Err() != nil {
			return g.cancelled(conn, ctx.Err())
		}

		res := g.Execute(line.Text)
		if err := g.write(conn, res.Output); err != nil {
			return err
		}
		if res.Terminal() {
			return nil
		}
		looked = res.Looked
	}
}

func (g *Game) cancelled(conn *console.Conn, cause error) error {
	g.logger.Info("session cancelled", zap.Error(cause))
	return g.write(conn, g.render.Farewell())
}

func (g *Game) write(conn *console.Conn, text string) error {
	if err := conn.Write(text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
