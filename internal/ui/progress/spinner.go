// Package progress renders an animated status line on stderr while the
// reflog is analysed. Results never go through it, so stdout stays clean.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/git-recycle/internal/ui/styles"
)

// stopTimeout bounds how long Stop waits for the program to exit.
const stopTimeout = 500 * time.Millisecond

type statusMsg string

type model struct {
	spinner spinner.Model
	status  string
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if s, ok := msg.(statusMsg); ok {
		m.status = string(s)
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m model) View() tea.View {
	if m.status == "" {
		return tea.NewView("")
	}
	return tea.NewView(m.spinner.View() + " " + m.status)
}

// Spinner shows a status line next to a spinner until stopped.
// All methods are safe for concurrent use.
type Spinner struct {
	out io.Writer

	mu      sync.Mutex
	status  string
	program *tea.Program // nil unless running
	exited  chan struct{}
}

// NewSpinner returns a stopped spinner that will show status on out,
// normally the diagnostics writer on stderr.
func NewSpinner(out io.Writer, status string) *Spinner {
	return &Spinner{out: out, status: status}
}

// Start begins the animation. Starting a running spinner does nothing.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.program != nil {
		return
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Current().Accent)

	p := tea.NewProgram(model{spinner: sp, status: s.status},
		tea.WithoutSignalHandler(),
		tea.WithInput(nil),
		tea.WithOutput(s.out),
		tea.WithColorProfile(colorprofile.Detect(s.out, os.Environ())),
	)
	exited := make(chan struct{})
	go func() {
		_, _ = p.Run()
		close(exited)
	}()
	s.program, s.exited = p, exited
}

// SetStatus replaces the status line.
func (s *Spinner) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	if s.program != nil {
		s.program.Send(statusMsg(status))
	}
}

// Progress returns a recycle.ProgressFunc showing "<label> i of n...".
func (s *Spinner) Progress(label string) func(done, total int) {
	return func(done, total int) {
		s.SetStatus(fmt.Sprintf("%s %d of %d...", label, done, total))
	}
}

// Stop ends the animation and clears its line. Stopping a stopped
// spinner does nothing.
func (s *Spinner) Stop() {
	s.mu.Lock()
	p, exited := s.program, s.exited
	s.program, s.exited = nil, nil
	s.mu.Unlock()
	if p == nil {
		return
	}

	p.Quit()
	select {
	case <-exited:
	case <-time.After(stopTimeout):
	}
	fmt.Fprint(s.out, "\r\033[K")
}

// Succeed stops the spinner and leaves a success line in its place.
func (s *Spinner) Succeed(message string) {
	s.Stop()
	fmt.Fprintln(s.out, styles.SuccessStyle.Render("✔ "+message))
}
