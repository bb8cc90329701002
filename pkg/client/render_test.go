package client

import (
	"bytes"
	"testing"

	"github.com/jpillora/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gothyra/adventure/pkg/game"
)

func TestScreenPlain(t *testing.T) {
	s := &Screen{Intro: "Welcome."}
	out := &bytes.Buffer{}

	v := game.View{Image: "images/room1.gif", Text: "You are in Room 1\nYou see: chair"}
	require.NoError(t, s.Render(out, v))
	assert.Equal(t, "Welcome.\r\n\r\n[ images/room1.gif ]\r\nYou are in Room 1\r\nYou see: chair\r\n\r\n> ", out.String())

	out.Reset()
	require.NoError(t, s.Render(out, v))
	assert.NotContains(t, out.String(), "Welcome.", "intro is shown once")

	out.Reset()
	require.NoError(t, s.Render(out, game.View{Ended: true}))
	assert.Equal(t, "Goodbye.\r\n", out.String())
}

func TestScreenAnsi(t *testing.T) {
	s := &Screen{Ansi: true}
	out := &bytes.Buffer{}

	require.NoError(t, s.Render(out, game.View{Image: "images/skull.gif", Text: game.StatusDead, Dead: true}))
	assert.True(t, bytes.HasPrefix(out.Bytes(), ansi.EraseScreen))
	assert.Contains(t, out.String(), string(ansi.Set(ansi.Red))+game.StatusDead)
}

func TestJSONRender(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, JSON{}.Render(out, game.View{World: "default", Room: "Room 1", Inventory: []string{}}))
	assert.Equal(t, `{"world":"default","room":"Room 1","image":"","inventory":[],"status":"","text":"","dead":false,"ended":false}`+"\n", out.String())
}
