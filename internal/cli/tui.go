package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/penman/pkg/amr"
	perrors "github.com/matzehuels/penman/pkg/errors"
)

var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	detailStyle     = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 2)
)

// maxInputWidth truncates sentences in the graph table.
const maxInputWidth = 48

func newBrowseCmd() *cobra.Command {
	var full, reify bool

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Page through the graphs of a penman file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyDecodeDefaults(cmd, &full, &reify)
			return runBrowse(cmd.Context(), args[0], full, reify)
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "keep :wiki attributes")
	cmd.Flags().BoolVar(&reify, "reify", false, "turn attributes into nodes")
	return cmd
}

func runBrowse(ctx context.Context, input string, full, reify bool) error {
	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	pairs, err := amr.ReadAll(in, amr.ReadOptions{
		Full:   full,
		Reify:  reify,
		Quiet:  true,
		Logger: loggerFromContext(ctx),
	}, true)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		printWarning("no graphs in %s", input)
		return nil
	}

	_, err = tea.NewProgram(NewGraphListModel(pairs), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}

// =============================================================================
// GraphListModel - Interactive graph browser
// =============================================================================

type browseKeys struct {
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Back  key.Binding
	Quit  key.Binding
	Abort key.Binding
}

var keys = browseKeys{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "show penman")),
	Back:  key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Abort: key.NewBinding(key.WithKeys("ctrl+c")),
}

// GraphListModel is the bubbletea model listing graphs; enter shows the
// selected graph in penman notation in a scrollable pane.
type GraphListModel struct {
	Pairs  []amr.Pair
	Cursor int
	Height int
	Offset int

	// Detail holds the penman text of the open graph, empty in the list view.
	Detail string

	pane viewport.Model
	help help.Model
}

// NewGraphListModel creates a list over pairs.
func NewGraphListModel(pairs []amr.Pair) GraphListModel {
	return GraphListModel{
		Pairs:  pairs,
		Height: 15,
		pane:   viewport.New(80, 20),
		help:   help.New(),
	}
}

func (m GraphListModel) Init() tea.Cmd {
	return nil
}

func (m GraphListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Abort) {
			return m, tea.Quit
		}
		if m.Detail != "" {
			return m.updateDetail(msg)
		}
		switch {
		case key.Matches(msg, keys.Quit, keys.Back):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case key.Matches(msg, keys.Down):
			if m.Cursor < len(m.Pairs)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case key.Matches(msg, keys.Open):
			m.Detail = formatDetail(m.Pairs[m.Cursor])
			m.pane.SetContent(detailStyle.Render(strings.TrimRight(m.Detail, "\n")))
			m.pane.GotoTop()
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m.pane.Width = msg.Width
		m.pane.Height = max(msg.Height-5, 5)
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m GraphListModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Back, keys.Open):
		m.Detail = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.pane, cmd = m.pane.Update(msg)
	return m, cmd
}

func formatDetail(p amr.Pair) string {
	text, err := amr.Format(p.Graph, amr.WriteOptions{})
	if err != nil {
		return StyleWarning.Render(perrors.UserMessage(err))
	}
	if p.Graph.Input != "" {
		text = StyleDim.Render("# ::snt "+p.Graph.Input) + "\n" + text
	}
	return text
}

func (m GraphListModel) View() string {
	var b strings.Builder

	if m.Detail != "" {
		g := m.Pairs[m.Cursor].Graph
		b.WriteString(StyleTitle.Render("#" + g.ID))
		b.WriteString("\n")
		b.WriteString(m.help.ShortHelpView([]key.Binding{keys.Up, keys.Down, keys.Back, keys.Quit}))
		b.WriteString("\n\n")
		b.WriteString(m.pane.View())
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(StyleTitle.Render("Graphs"))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{keys.Up, keys.Down, keys.Open, keys.Quit}))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Pairs))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		g := m.Pairs[i].Graph
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		aligned := ""
		if m.Pairs[i].Overlay != nil {
			aligned = "✓"
		}
		rows = append(rows, []string{
			cursor,
			g.ID,
			strconv.Itoa(g.NodeCount()),
			strconv.Itoa(g.EdgeCount()),
			aligned,
			truncate(g.Input, maxInputWidth),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Nodes", "Edges", "Aligned", "Input").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 5 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Pairs))))

	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
