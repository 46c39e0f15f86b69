package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ugparu/mxfheader/header"
)

var (
	listBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	detailTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212"))

	statusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))
)

// Model is the mxfinspect bubbletea model: a fuzzy-filterable tree of
// the partition's resolved object graph on the left, a detail pane on
// the right showing the selected row's fields.
type Model struct {
	hp       *header.HeaderPartition
	list     list.Model
	detail   viewport.Model
	width    int
	height   int
}

// NewModel builds the initial TUI state for an already-parsed
// partition. mxfinspect is read-only — there are no editing commands.
func NewModel(hp *header.HeaderPartition) Model {
	rows := buildTree(hp)
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = r
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "Header Partition Object Graph"
	l.SetFilteringEnabled(true)
	l.Filter = fuzzyFilter

	d := viewport.New(0, 0)

	m := Model{hp: hp, list: l, detail: d}
	m.updateDetail()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		listWidth := m.width / 2
		m.list.SetSize(listWidth, m.height-2)
		m.detail.Width = m.width - listWidth - 4
		m.detail.Height = m.height - 2
		m.updateDetail()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if !m.list.SettingFilter() {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.updateDetail()
	return m, cmd
}

func (m *Model) updateDetail() {
	item, ok := m.list.SelectedItem().(node)
	if !ok {
		m.detail.SetContent("nothing selected")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", detailTitleStyle.Render(item.label))
	fmt.Fprintf(&b, "depth: %d\n", item.depth)
	fmt.Fprintf(&b, "%s\n", item.detail)
	m.detail.SetContent(b.String())
}

func (m Model) View() string {
	listView := listBorderStyle.Render(m.list.View())
	detailView := listBorderStyle.Width(m.detail.Width).Height(m.detail.Height).Render(m.detail.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, listView, detailView)

	status := statusStyle.Render(fmt.Sprintf(
		"essence duration: %d  |  %d material packages  |  %d source packages  |  / to filter, q to quit",
		m.hp.EssenceDuration(), len(m.hp.MaterialPackages()), len(m.hp.SourcePackages()),
	))

	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}
