package game

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string

		expected Command
		ok       bool
	}{
		{line: "go east", expected: Command{Verb: VerbGo, Word: "go", Noun: "east"}, ok: true},
		{line: "LOOK Chair", expected: Command{Verb: VerbLook, Word: "look", Noun: "chair"}, ok: true},
		{line: "  take \t key  ", expected: Command{Verb: VerbTake, Word: "take", Noun: "key"}, ok: true},
		{line: "fly away", expected: Command{Verb: VerbUnknown, Word: "fly", Noun: "away"}, ok: true},
		{line: "go", ok: false},
		{line: "take the key", ok: false},
		{line: "", ok: false},
		{line: "   ", ok: false},
	}

	for _, test := range tests {
		got, ok := Parse(test.line)
		if ok != test.ok {
			t.Errorf("%q: expected ok=%t, got %t", test.line, test.ok, ok)
			continue
		}
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("%q: expected %+v, got %+v", test.line, test.expected, got)
		}
	}
}

func TestVerbString(t *testing.T) {
	for word, verb := range verbs {
		if verb.String() != word {
			t.Errorf("expected %q, got %q", word, verb.String())
		}
	}
	if VerbUnknown.String() != "unknown" {
		t.Errorf("expected unknown, got %q", VerbUnknown.String())
	}
}
