// Package tui provides the interactive timeline preview: a scrollable
// terminal rendering of the live node tree.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KialHarrison/kh-timelines/internal/render"
	"github.com/KialHarrison/kh-timelines/internal/timeline"
)

// treeMsg is sent when an async timeline render completes.
type treeMsg struct {
	root *render.Node
	err  error
}

type model struct {
	title    string
	entries  []timeline.Entry
	cfg      render.Config
	prose    render.ProseRenderer
	basePath string

	viewport viewport.Model
	ready    bool
	err      error
}

// renderCmd returns a tea.Cmd that renders the timeline tree off the
// update loop.
func (m model) renderCmd() tea.Cmd {
	return func() tea.Msg {
		root, err := render.RenderTree(context.Background(), m.entries, m.cfg, m.prose, m.basePath)
		return treeMsg{root: root, err: err}
	}
}

func (m model) Init() tea.Cmd {
	return m.renderCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
		return m, nil

	case treeMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.viewport.SetContent(viewNode(msg.root))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.ToggleMarkers):
			m.cfg.ShowMarkers = !m.cfg.ShowMarkers
			return m, m.renderCmd()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	header := styleHeader.Render(m.title)
	hint := styleHint.Render("m toggle markers · q quit")
	return header + "  " + hint + "\n\n" + m.viewport.View()
}

// Run starts the preview and blocks until the user quits. The screen is
// acquired on start and restored on exit via the alt screen.
func Run(title string, entries []timeline.Entry, cfg render.Config, prose render.ProseRenderer, basePath string) error {
	m := model{
		title:    title,
		entries:  entries,
		cfg:      cfg,
		prose:    prose,
		basePath: basePath,
	}
	finalModel, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := finalModel.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
