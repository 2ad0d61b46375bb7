package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bstcodec/codec"
	"github.com/wippyai/bstcodec/tree"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	encodedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func interactiveCommand() *cli.Command {
	return &cli.Command{
		Name:  "interactive",
		Usage: "insert keys one by one and watch the encoding",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "range",
				Usage: "random keys (ctrl+r) are drawn from [0, range)",
				Value: 100,
			},
		},
		Action: runInteractive,
	}
}

func runInteractive(cctx *cli.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	if cctx.Int("range") < 1 {
		return fmt.Errorf("range must be >= 1")
	}
	m := newInteractiveModel(gofakeit.New(0), cctx.Int("range"))
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type interactiveModel struct {
	err      error
	tree     *tree.Tree[int]
	faker    *gofakeit.Faker
	encoded  string
	status   string
	input    textinput.Model
	keyRange int
}

func newInteractiveModel(faker *gofakeit.Faker, keyRange int) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "5 3 8"
	ti.Prompt = "keys: "
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		tree:     tree.New[int](),
		faker:    faker,
		input:    ti,
		keyRange: keyRange,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			keys, err := parseKeyList([]string{m.input.Value()})
			if err != nil {
				m.err = err
				return m, nil
			}
			m.insert(keys...)
			m.input.SetValue("")
			return m, nil

		case "ctrl+r":
			m.insert(m.faker.Number(0, m.keyRange-1))
			return m, nil

		case "ctrl+x":
			m.tree = tree.New[int]()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// insert adds keys in order and re-checks the round trip.
func (m *interactiveModel) insert(keys ...int) {
	for _, k := range keys {
		m.tree.InsertKey(k)
	}
	m.refresh()
}

func (m *interactiveModel) refresh() {
	m.err = nil
	res, err := codec.RoundTrip(m.tree)
	m.encoded = res.Encoded
	switch {
	case err != nil:
		m.err = err
		m.status = ""
	case res.OK():
		m.status = "round trip ok"
	default:
		m.err = fmt.Errorf("round trip mismatch: %q", res.Reencoded)
		m.status = ""
	}
	if m.err != nil {
		log.Error("interactive round trip", zap.String("encoded", m.encoded), zap.Error(m.err))
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("BST Codec"))
	b.WriteString(fmt.Sprintf(" %d nodes, height %d\n\n", m.tree.Len(), m.tree.Height()))

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.encoded == "" {
		b.WriteString(helpStyle.Render("(empty tree)"))
	} else {
		b.WriteString(encodedStyle.Render(m.encoded))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	} else if m.status != "" {
		b.WriteString(okStyle.Render(m.status))
	}
	b.WriteString("\n\n")

	if !m.tree.Empty() {
		b.WriteString(renderTree(m.tree))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter insert • ctrl+r random key • ctrl+x clear • esc quit"))
	return b.String()
}
