package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the vertical space used by everything except the record
// viewport: title, status, buffer line, and footer.
const chromeHeight = 8

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	return vp
}

// View renders the entire UI.
func (m Model) View() string {
	if !m.ready {
		return "initializing..."
	}

	title := titleStyle.Render("aamvascan")
	if m.demo {
		title += " " + demoBadgeStyle.Render("DEMO")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.renderStatus(),
		m.renderBuffer(),
		paneStyle.Width(m.width-2).Render(m.renderRecords()),
		m.renderFooter(),
	)
}

func (m Model) renderStatus() string {
	switch {
	case m.started:
		return statusCapturingStyle.Render(
			fmt.Sprintf("● capturing — %d characters buffered", len(m.parser.Buffer())))
	case m.parseErr != nil:
		return statusErrorStyle.Render("✗ " + m.parseErr.Error())
	case m.result != nil:
		return statusOKStyle.Render(
			fmt.Sprintf("✓ capture %d complete — IIN %s, %d subfiles",
				m.captures, m.result.Header.IIN, m.result.Header.NumEntries))
	default:
		return statusIdleStyle.Render("waiting for scanner input")
	}
}

// renderBuffer shows a tail of the raw capture with control characters made
// visible.
func (m Model) renderBuffer() string {
	buf := m.parser.Buffer()
	const tail = 48
	if len(buf) > tail {
		buf = "…" + buf[len(buf)-tail:]
	}
	shown := strings.NewReplacer(
		"\n", "␊",
		"\r", "␍",
		"\x1e", "␞",
	).Replace(buf)
	return bufferStyle.Render("buffer: " + shown)
}

func (m Model) renderRecords() string {
	if m.result == nil {
		return mutedStyle.Render("no capture yet")
	}
	return m.viewport.View()
}

func (m Model) renderFooter() string {
	parts := []string{
		"enter ␊", "ctrl+r ␍", "ctrl+e ␞", "ctrl+l reset", "esc quit",
	}
	line := footerStyle.Render(strings.Join(parts, "  ·  "))
	if m.timeouts > 0 {
		line += footerStyle.Render(fmt.Sprintf("   (%d abandoned)", m.timeouts))
	}
	return line
}
