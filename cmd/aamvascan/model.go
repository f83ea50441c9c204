package main

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scantools/aamvakit/aamva"
	"github.com/scantools/aamvakit/cmd/aamvascan/logger"
	"github.com/scantools/aamvakit/pkg/types"
)

// idleTimeout is how long a half-finished capture may sit without input
// before it is abandoned. Wedge scanners emit the whole payload in one
// burst, so a stall this long means the burst is over and was incomplete.
const idleTimeout = 2 * time.Second

// tickInterval drives the idle check and the demo replay.
const tickInterval = 50 * time.Millisecond

// demoPayload is replayed character by character in --demo mode.
const demoPayload = "@\n\x1e\rANSI 636000110002" +
	"DL00410053" + "ZV00940008" +
	"DLDAQT64235789\nDCSSAMPLE\nDACMICHAEL\nDADM\nDBB01091985\r" +
	"ZVZVA01\r"

// tickMsg is the periodic heartbeat for idle detection and demo replay.
type tickMsg time.Time

// Model is the capture screen: one in-flight parser, the outcome of the
// last concluded capture, and the viewport showing parsed records.
type Model struct {
	parser  *aamva.Parser
	started bool // characters received for the capture in flight
	lastKey time.Time

	result   *types.ParseResult // last successful capture
	parseErr error              // last failed capture
	captures int
	timeouts int

	demo    bool
	demoPos int

	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

func NewModel(demo bool) Model {
	return Model{
		parser: aamva.New(""),
		demo:   demo,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// feed pushes characters into the in-flight parser, starting a fresh capture
// if the previous one already concluded.
func (m *Model) feed(s string) {
	if m.parser.Complete() || m.parser.Err() != nil {
		m.parser = aamva.New("")
		m.started = false
	}
	m.started = true
	m.lastKey = time.Now()

	if m.parser.Append(s) {
		return // still waiting for more input
	}

	m.started = false
	if err := m.parser.Err(); err != nil {
		m.parseErr = err
		m.result = nil
		logger.Error("capture failed", "error", err, "buffered", len(m.parser.Buffer()))
		return
	}
	if result, ok := m.parser.Result(); ok {
		m.result = &result
		m.parseErr = nil
		m.captures++
		logger.Info("capture complete",
			"iin", result.Header.IIN,
			"entries", result.Header.NumEntries,
			"chars", len(m.parser.Buffer()))
		m.refreshViewport()
	}
}

// abandon discards the capture in flight, keeping the last concluded result
// on screen.
func (m *Model) abandon(reason string) {
	if !m.started {
		return
	}
	logger.Warn("capture abandoned", "reason", reason, "buffered", len(m.parser.Buffer()))
	m.parser = aamva.New("")
	m.started = false
	m.timeouts++
}
