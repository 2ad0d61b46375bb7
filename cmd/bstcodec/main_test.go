package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	bsterrors "github.com/wippyai/bstcodec/errors"
	"github.com/wippyai/bstcodec/tree"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"bstcodec", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"separate_args", []string{"5", "3", "8"}, "5(l3)(r8)\n"},
		{"comma_list", []string{"5,3,1"}, "5(l3(l1))\n"},
		{"negative_keys", []string{"--", "0", "-5", "5"}, "0(l-5)(r5)\n"},
		{"no_keys", nil, "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, append([]string{"encode"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEncodeCommand_BadKey(t *testing.T) {
	_, err := runApp(t, "encode", "5", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "x"`)
}

func TestDecodeCommand(t *testing.T) {
	out, err := runApp(t, "decode", "5(l3(l1)(r4))(r8)")
	require.NoError(t, err)
	assert.Equal(t, "5(l3(l1)(r4))(r8)\n", out)

	out, err = runApp(t, "decode", "")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestDecodeCommand_Errors(t *testing.T) {
	_, err := runApp(t, "decode", "5(l")
	require.Error(t, err)
	assert.True(t, errors.Is(err, bsterrors.ErrUnbalanced), "error %v", err)
	assert.True(t, bsterrors.IsFormat(err))

	_, err = runApp(t, "decode", "5(l9)")
	require.NoError(t, err)

	_, err = runApp(t, "decode", "--strict", "5(l9)")
	require.Error(t, err)
	assert.True(t, errors.Is(err, bsterrors.ErrOrderViolation), "error %v", err)

	_, err = runApp(t, "decode", "1", "2")
	require.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	out, err := runApp(t, "show", "5(l3(l1))(r8)")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "5", lines[0])
	assert.Contains(t, lines[1], "l: 3")
	assert.Contains(t, lines[2], "l: 1")
	assert.Contains(t, lines[3], "r: 8")
}

func TestRenderTree_Empty(t *testing.T) {
	assert.Equal(t, "(empty)\n", renderTree(tree.New[int]()))
}

func TestRoundTripCommand(t *testing.T) {
	out, err := runApp(t, "roundtrip", "--runs", "20", "--seed", "42", "--print")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 21)
	assert.Equal(t, "Test runs completed successfully!", lines[20])
	for _, l := range lines[:20] {
		assert.NotEmpty(t, l)
	}

	again, err := runApp(t, "roundtrip", "--runs", "20", "--seed", "42", "--print")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed should give the same trees")
}

func TestRoundTripCommand_Default(t *testing.T) {
	out, err := runApp(t, "--seed", "1", "--nodes", "200", "--range", "1000")
	require.NoError(t, err)
	assert.Equal(t, "Test runs completed successfully!\n", out)
}

func TestRoundTripCommand_InvalidFlags(t *testing.T) {
	for _, args := range [][]string{
		{"roundtrip", "--runs", "0"},
		{"roundtrip", "--range", "0"},
		{"roundtrip", "--nodes", "-1"},
	} {
		_, err := runApp(t, args...)
		assert.Error(t, err, "args %v", args)
	}
}

func TestRoundTripCommand_EnvConfig(t *testing.T) {
	t.Setenv("BSTCODEC_NODES", "0")
	t.Setenv("BSTCODEC_RUNS", "3")
	out, err := runApp(t, "roundtrip", "--print")
	require.NoError(t, err)
	assert.Equal(t, "\n\n\nTest runs completed successfully!\n", out)
}

func TestRandomTree(t *testing.T) {
	tr := randomTree(gofakeit.New(9), 50, 10)
	assert.LessOrEqual(t, tr.Len(), 10)
	require.NoError(t, tr.Validate())
	for k := range tr.All() {
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, 10)
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		l, err := newLogger("debug", format)
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(-1))
	}

	_, err := newLogger("loud", "json")
	assert.Error(t, err)

	_, err = newLogger("info", "xml")
	assert.Error(t, err)

	_, err = runApp(t, "--log-format", "xml", "encode", "1")
	assert.Error(t, err)
}

func TestInteractiveCommand_RequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	_, err := runApp(t, "interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func typeKeys(m *interactiveModel, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestInteractiveModel_Insert(t *testing.T) {
	m := newInteractiveModel(gofakeit.New(3), 100)

	typeKeys(m, "5 3 8")
	require.NoError(t, m.err)
	assert.Equal(t, "5(l3)(r8)", m.encoded)
	assert.Equal(t, "round trip ok", m.status)
	assert.Empty(t, m.input.Value())

	typeKeys(m, "1")
	assert.Equal(t, "5(l3(l1))(r8)", m.encoded)

	view := m.View()
	assert.Contains(t, view, "5(l3(l1))(r8)")
	assert.Contains(t, view, "4 nodes, height 3")
	assert.Contains(t, view, "round trip ok")
}

func TestInteractiveModel_BadInput(t *testing.T) {
	m := newInteractiveModel(gofakeit.New(3), 100)
	typeKeys(m, "5 x")
	require.Error(t, m.err)
	assert.True(t, m.tree.Empty())
	assert.Contains(t, m.View(), "Error:")
}

func TestInteractiveModel_RandomAndClear(t *testing.T) {
	m := newInteractiveModel(gofakeit.New(3), 10)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, 1, m.tree.Len())
	k := m.tree.Root().Key()
	assert.GreaterOrEqual(t, k, 0)
	assert.Less(t, k, 10)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.True(t, m.tree.Empty())
	assert.Equal(t, "", m.encoded)
	assert.Contains(t, m.View(), "(empty tree)")
}

func TestInteractiveModel_Quit(t *testing.T) {
	m := newInteractiveModel(gofakeit.New(3), 10)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
