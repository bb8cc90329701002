package client

import (
	"reflect"
	"testing"
)

func TestPromptBarFeed(t *testing.T) {
	tests := []struct {
		name  string
		input []string

		expectedLines []string
		expectedEcho  string
		expectedLine  string
	}{
		{
			name:         "partial line",
			input:        []string{"go ea"},
			expectedEcho: "go ea",
			expectedLine: "go ea",
		},
		{
			name:          "split over reads",
			input:         []string{"go ea", "st\r", "\n"},
			expectedLines: []string{"go east"},
			expectedEcho:  "go east\r\n",
		},
		{
			name:          "lone line feed",
			input:         []string{"look chair\n"},
			expectedLines: []string{"look chair"},
			expectedEcho:  "look chair\r\n",
		},
		{
			name:          "backspace on empty line",
			input:         []string{"\x7f\x08q\r"},
			expectedLines: []string{"q"},
			expectedEcho:  "q\r\n",
		},
		{
			name:          "control bytes are dropped",
			input:         []string{"g\x01o\tn\r"},
			expectedLines: []string{"gon"},
			expectedEcho:  "gon\r\n",
		},
		{
			name:          "history recall",
			input:         []string{"go east\r", "\x1b[A", "\r"},
			expectedLines: []string{"go east", "go east"},
			expectedEcho:  "go east\r\ngo east\r\n",
		},
		{
			name:          "arrow down clears recalled line",
			input:         []string{"take key\r", "\x1b[A\x1b[B"},
			expectedLines: []string{"take key"},
			expectedEcho:  "take key\r\ntake key" + "\b \b\b \b\b \b\b \b\b \b\b \b\b \b\b \b",
		},
		{
			name:         "arrow keys without history",
			input:        []string{"\x1b[A\x1b[B\x1b[C\x1b[Dq"},
			expectedEcho: "q",
			expectedLine: "q",
		},
	}

	for _, test := range tests {
		p := NewPromptBar()
		var lines []string
		echo := ""
		for _, in := range test.input {
			l, e := p.Feed([]byte(in))
			lines = append(lines, l...)
			echo += string(e)
		}

		if !reflect.DeepEqual(lines, test.expectedLines) {
			t.Errorf("%s: expected lines %q, got %q", test.name, test.expectedLines, lines)
		}
		if echo != test.expectedEcho {
			t.Errorf("%s: expected echo %q, got %q", test.name, test.expectedEcho, echo)
		}
		if p.Line() != test.expectedLine {
			t.Errorf("%s: expected pending line %q, got %q", test.name, test.expectedLine, p.Line())
		}
	}
}
