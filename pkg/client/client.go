package client

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/oklog/ulid/v2"
	log "gopkg.in/inconshreveable/log15.v2"

	"github.com/gothyra/adventure/pkg/area"
	"github.com/gothyra/adventure/pkg/game"
)

// Client plays one session of the game over a byte stream.
type Client struct {
	Name    string
	Session ulid.ULID

	out      io.Writer
	renderer Renderer
	state    *game.State
	interp   *game.Interpreter
	log      log.Logger
}

// New starts a session in a fresh copy of world.
func New(name string, out io.Writer, renderer Renderer, world area.Definition, quitWords []string) (*Client, error) {
	w, err := world.Build()
	if err != nil {
		return nil, err
	}
	state, err := game.NewState(w)
	if err != nil {
		return nil, err
	}

	session := ulid.Make()
	logger := log.New("client", name, "session", session.String())

	return &Client{
		Name:     name,
		Session:  session,
		out:      out,
		renderer: renderer,
		state:    state,
		interp:   game.NewInterpreter(logger, quitWords...),
		log:      logger,
	}, nil
}

func (c *Client) State() *game.State {
	return c.state
}

// Play renders the start of the session, then processes lines one at a time
// until a quit word, the end of input or stopCh.
func (c *Client) Play(lines <-chan string, stopCh <-chan struct{}) error {
	c.log.Info("session started", "world", c.state.World().Name)
	if err := c.renderer.Render(c.out, c.state.View()); err != nil {
		return err
	}

	for {
		select {
		case <-stopCh:
			c.log.Info("session stopped")
			return nil

		case line, ok := <-lines:
			if !ok {
				c.log.Info("input closed")
				return nil
			}

			turn := c.interp.Process(c.state, line)
			switch turn.Outcome {
			case game.Quit:
				c.log.Info("session ended", "inventory", strings.Join(c.state.Inventory(), ","))
				return c.renderer.Render(c.out, c.state.View())
			case game.Ignored:
				continue
			}

			if err := c.renderer.Render(c.out, c.state.View()); err != nil {
				return err
			}
		}
	}
}

// ReadRaw reads keystrokes from a raw terminal, echoes them to echo and sends
// every completed line. lines is closed when r is exhausted or the player
// presses ctrl-c or ctrl-d.
func ReadRaw(r io.Reader, echo io.Writer, lines chan<- string, stopCh <-chan struct{}) {
	defer close(lines)

	bar := NewPromptBar()
	buff := make([]byte, 64)

	for {
		n, err := r.Read(buff)
		if n > 0 {
			b := buff[:n]
			interrupted := false
			if i := bytes.IndexAny(b, "\x03\x04"); i >= 0 {
				b, interrupted = b[:i], true
			}

			completed, out := bar.Feed(b)
			if len(out) > 0 {
				echo.Write(out)
			}
			for _, line := range completed {
				select {
				case lines <- line:
				case <-stopCh:
					return
				}
			}
			if interrupted {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// ReadLines sends every line of r, for terminals that do their own editing.
func ReadLines(r io.Reader, lines chan<- string, stopCh <-chan struct{}) {
	defer close(lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-stopCh:
			return
		}
	}
}
