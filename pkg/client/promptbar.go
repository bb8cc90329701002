package client

import "bytes"

const (
	ARROW_UP = iota + 65
	ARROW_DOWN
	ARROW_RIGHT
	ARROW_LEFT
)

const (
	CTRL_C        = 3
	CTRL_D        = 4
	BACKSPACE_KEY = 8
	LINE_FEED     = 10
	ENTER_KEY     = 13
	ESCAPE_KEY    = 27
	SPACE_KEY     = 32
	TILDE_KEY     = 126
	DELETE_KEY    = 127
)

var erase = []byte("\b \b")

// PromptBar edits one line of input typed on a raw terminal. It echoes what
// the player types and keeps a history reachable with the arrow keys.
type PromptBar struct {
	line     []byte
	history  []string
	rollback int
	escape   []byte
	lastCR   bool
}

func NewPromptBar() *PromptBar {
	return &PromptBar{}
}

// Feed consumes raw terminal bytes. It returns every line completed by them
// and the bytes to echo back to the terminal.
func (p *PromptBar) Feed(b []byte) ([]string, []byte) {
	var lines []string
	echo := &bytes.Buffer{}

	for _, c := range b {
		if p.escape != nil {
			p.feedEscape(c, echo)
			continue
		}

		lf := c == LINE_FEED && p.lastCR
		p.lastCR = c == ENTER_KEY
		if lf {
			continue
		}

		switch {
		case c == ENTER_KEY || c == LINE_FEED:
			line := string(p.line)
			lines = append(lines, line)
			if line != "" {
				p.history = append(p.history, line)
			}
			p.rollback = len(p.history)
			p.line = p.line[:0]
			echo.WriteString("\r\n")

		case c == DELETE_KEY || c == BACKSPACE_KEY:
			if len(p.line) > 0 {
				p.line = p.line[:len(p.line)-1]
				echo.Write(erase)
			}

		case c == ESCAPE_KEY:
			p.escape = []byte{}

		case c >= SPACE_KEY && c <= TILDE_KEY:
			p.line = append(p.line, c)
			echo.WriteByte(c)
		}
	}

	return lines, echo.Bytes()
}

func (p *PromptBar) feedEscape(c byte, echo *bytes.Buffer) {
	if len(p.escape) == 0 {
		if c == '[' || c == 'O' {
			p.escape = append(p.escape, c)
			return
		}
		p.escape = nil
		return
	}

	// Final byte of a CSI sequence.
	if c < 0x40 || c > 0x7e {
		p.escape = append(p.escape, c)
		return
	}
	p.escape = nil

	switch c {
	case ARROW_UP:
		if p.rollback > 0 {
			p.rollback--
			p.replace(p.history[p.rollback], echo)
		}
	case ARROW_DOWN:
		if p.rollback < len(p.history)-1 {
			p.rollback++
			p.replace(p.history[p.rollback], echo)
		} else if p.rollback < len(p.history) {
			p.rollback = len(p.history)
			p.replace("", echo)
		}
	}
}

func (p *PromptBar) replace(line string, echo *bytes.Buffer) {
	for range p.line {
		echo.Write(erase)
	}
	p.line = append(p.line[:0], line...)
	echo.WriteString(line)
}

// Line returns what has been typed since the last completed line.
func (p *PromptBar) Line() string {
	return string(p.line)
}
