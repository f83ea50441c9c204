package main

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scantools/aamvakit/aamva/printer"
)

// Update handles all messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.demo && m.demoPos < len(demoPayload) {
			m.feed(demoPayload[m.demoPos : m.demoPos+1])
			m.demoPos++
		}
		if m.started && time.Since(m.lastKey) > idleTimeout {
			m.abandon("idle timeout")
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - chromeHeight
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = newViewport(msg.Width-2, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyCtrlL:
		m.abandon("manual reset")
		return m, nil

	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	// The wedge-scanner control characters a terminal cannot deliver
	// directly get explicit chords.
	case tea.KeyEnter:
		m.feed("\n")
		return m, nil
	case tea.KeyCtrlR:
		m.feed("\r")
		return m, nil
	case tea.KeyCtrlE:
		m.feed("\x1e")
		return m, nil

	case tea.KeySpace:
		m.feed(" ")
		return m, nil

	case tea.KeyRunes:
		m.feed(string(msg.Runes))
		return m, nil
	}
	return m, nil
}

// refreshViewport re-renders the record pane from the last successful
// capture.
func (m *Model) refreshViewport() {
	if !m.ready || m.result == nil {
		return
	}
	var sb strings.Builder
	opts := printer.DefaultOptions()
	opts.ShowDesignators = false
	if err := printer.New(&sb, opts).PrintResult(*m.result); err != nil {
		sb.WriteString("render error: " + err.Error())
	}
	m.viewport.SetContent(sb.String())
}
