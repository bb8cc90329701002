package client

import (
	"bytes"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jpillora/ansi"

	"github.com/gothyra/adventure/pkg/game"
)

// Renderer draws a view of the game after every turn.
type Renderer interface {
	Render(w io.Writer, v game.View) error
}

const prompt = "> "

// Screen renders the game as text. With Ansi set the screen is cleared and
// colored before every frame, which is what ssh terminals get.
type Screen struct {
	Ansi bool
	// Intro is printed above the first frame only.
	Intro string

	frames int
}

func (s *Screen) Render(w io.Writer, v game.View) error {
	var buffer bytes.Buffer

	if s.Ansi {
		buffer.Write(ansi.EraseScreen)
		buffer.Write(ansi.Goto(1, 1))
	}

	if v.Ended {
		buffer.WriteString("Goodbye.\r\n")
		_, err := w.Write(buffer.Bytes())
		return err
	}

	if s.frames == 0 && s.Intro != "" {
		s.writeLines(&buffer, s.Intro)
		buffer.WriteString("\r\n")
	}
	s.frames++

	s.color(&buffer, ansi.Set(ansi.Blue))
	buffer.WriteString("[ " + v.Image + " ]\r\n")
	s.color(&buffer, ansi.Set(ansi.Default))

	if v.Dead {
		s.color(&buffer, ansi.Set(ansi.Red))
	}
	s.writeLines(&buffer, v.Text)
	s.color(&buffer, ansi.Set(ansi.Default))

	buffer.WriteString("\r\n" + prompt)

	_, err := w.Write(buffer.Bytes())
	return err
}

func (s *Screen) color(buffer *bytes.Buffer, set []byte) {
	if s.Ansi {
		buffer.Write(set)
	}
}

// writeLines writes text with terminal line endings.
func (s *Screen) writeLines(buffer *bytes.Buffer, text string) {
	for _, line := range strings.Split(text, "\n") {
		buffer.WriteString(line + "\r\n")
	}
}

// JSON renders every view as one JSON document per line.
type JSON struct{}

func (JSON) Render(w io.Writer, v game.View) error {
	return json.NewEncoder(w).Encode(v)
}
