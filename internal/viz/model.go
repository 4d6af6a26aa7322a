package viz

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sortalg"
	"github.com/san-kum/sortviz/internal/stepper"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	outputWidth   = 46
	maxOutput     = 200
)

// TickMsg is one animation tick. Gen ties it to the tick chain that
// scheduled it; ticks from a cancelled chain are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// ReloadMsg asks the model to reload its dataset through its Loader.
type ReloadMsg struct{}

// Loader supplies a dataset on demand, e.g. by rereading a file.
type Loader[T cmp.Ordered] func() (name string, values []T, err error)

// Model is the bubbletea front end for a session. It is the only caller of
// Step, so steps are never concurrent.
type Model[T cmp.Ordered] struct {
	sess          *session.Session[T]
	registry      *sortalg.Registry
	loader        Loader[T]
	theme         Theme
	limit         int
	gen           int
	width, height int
	output        []string
	err           error
	showHelp      bool
}

func NewModel[T cmp.Ordered](sess *session.Session[T], loader Loader[T], theme string, limit int) Model[T] {
	m := Model[T]{
		sess:     sess,
		registry: sortalg.NewRegistry(),
		loader:   loader,
		theme:    GetTheme(theme),
		limit:    limit,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	if sess.Loaded() {
		m.logLoaded()
	}
	return m
}

func (m Model[T]) Init() tea.Cmd {
	if !m.sess.Loaded() && m.loader != nil {
		return func() tea.Msg { return ReloadMsg{} }
	}
	return nil
}

func (m Model[T]) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.sess.Delay(), func(t time.Time) tea.Msg { return TickMsg{Gen: gen, Time: t} })
}

// Update handles input events and advances the animation.
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.onTick(msg)
	case ReloadMsg:
		return m.reload()
	}
	return m, nil
}

func (m Model[T]) handleKey(msg tea.KeyMsg) (Model[T], tea.Cmd) {
	m.err = nil
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "enter":
		return m.toggle()
	case "r":
		if err := m.sess.Reset(); err != nil {
			m.err = err
			break
		}
		m.gen++
		m.log("replay: reset to the original dataset")
	case "a":
		m.setErr(m.sess.SelectAlgorithm(m.registry.Next(m.sess.Kind())))
		if m.err == nil {
			m.log("algorithm: " + m.registry.Title(m.sess.Kind()))
		}
	case "o":
		m.setErr(m.sess.SelectOrder(m.sess.Order().Toggle()))
		if m.err == nil {
			m.log("order: " + m.sess.Order().String())
		}
	case "+", "=", "right", "l":
		m.sess.SetSpeed(int(m.sess.Speed().Faster()))
	case "-", "_", "left", "h":
		m.sess.SetSpeed(int(m.sess.Speed().Slower()))
	case "t":
		m.theme = NextTheme(m.theme.Name)
	case "c":
		m.output = nil
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model[T]) setErr(err error) {
	if errors.Is(err, session.ErrRunInProgress) {
		err = fmt.Errorf("%w (press r)", err)
	}
	m.err = err
}

// toggle is the play/pause control.
func (m Model[T]) toggle() (Model[T], tea.Cmd) {
	switch m.sess.State() {
	case stepper.Idle:
		if err := m.sess.Start(); err != nil {
			m.err = err
			return m, nil
		}
		if m.sess.State() == stepper.Completed {
			m.logSummary()
			return m, nil
		}
		m.gen++
		return m, m.tick()
	case stepper.Running:
		m.setErr(m.sess.Pause())
		m.gen++
	case stepper.Paused:
		if err := m.sess.Resume(); err != nil {
			m.err = err
			return m, nil
		}
		m.gen++
		return m, m.tick()
	case stepper.Completed:
		m.log("completed: press r to replay")
	}
	return m, nil
}

func (m Model[T]) onTick(msg TickMsg) (Model[T], tea.Cmd) {
	if msg.Gen != m.gen || m.sess.State() != stepper.Running {
		return m, nil
	}
	snap, err := m.sess.Step()
	if err != nil {
		m.err = err
		return m, nil
	}
	if snap.Done() {
		m.logSummary()
		return m, nil
	}
	return m, m.tick()
}

func (m Model[T]) reload() (Model[T], tea.Cmd) {
	if m.loader == nil {
		return m, nil
	}
	name, values, err := m.loader()
	if err != nil {
		m.err = err
		m.log("error reading dataset: " + err.Error())
		return m, nil
	}
	if err := m.sess.LoadDataset(name, values); err != nil {
		m.err = err
		m.log("error loading dataset: " + err.Error())
		return m, nil
	}
	m.gen++
	m.logLoaded()
	return m, nil
}

func (m *Model[T]) log(line string) {
	m.output = append(m.output, strings.Split(strings.TrimRight(line, "\n"), "\n")...)
	if len(m.output) > maxOutput {
		m.output = m.output[len(m.output)-maxOutput:]
	}
}

func (m *Model[T]) logLoaded() {
	sum, err := m.sess.Summary()
	if err != nil {
		return
	}
	m.log(FormatLoaded(sum, m.limit))
}

func (m *Model[T]) logSummary() {
	sum, err := m.sess.Summary()
	if err != nil {
		return
	}
	m.log("")
	m.log(FormatSummary(sum, m.limit))
}

// View renders the chart on the left and the output panel on the right.
func (m Model[T]) View() string {
	st := newStyles(m.theme)

	chartW := m.width - outputWidth - 6
	if chartW < 10 {
		chartW = 10
	}
	chartH := m.height - 10
	if chartH < 4 {
		chartH = 4
	}

	var left strings.Builder
	left.WriteString(st.title.Render("SORTVIZ  " + m.registry.Title(m.sess.Kind()) + " (" + m.sess.Order().String() + ")"))
	left.WriteString("\n")

	snap, err := m.sess.Snapshot()
	if err != nil {
		left.WriteString(st.hint.Render("no dataset loaded") + "\n")
	} else {
		left.WriteString(RenderBars(snap, chartW, chartH, m.theme))
		settled := 0.0
		if n := len(snap.Values); n > 0 {
			settled = float64(min(snap.Cursor.Outer, n)) / float64(n)
		}
		left.WriteString(ProgressBar(settled, chartW, m.theme) + "\n")
		left.WriteString(fmt.Sprintf("%s  pass %d  index %d  comparisons %d  swaps %d\n",
			st.status(snap.State), snap.Cursor.Outer, snap.Cursor.Inner, snap.Stats.Comparisons, snap.Stats.Swaps))
	}
	left.WriteString(st.label.Render("speed") + st.value.Render(fmt.Sprintf("%d (%v/step)", m.sess.Speed(), m.sess.Delay())) + "\n")
	if m.err != nil {
		left.WriteString(st.err.Render(m.err.Error()) + "\n")
	}
	left.WriteString("\n" + st.keyHints("space", "play/pause", "r", "replay", "a", "algorithm", "o", "order") + "\n")
	left.WriteString(st.keyHints("+/-", "speed", "t", "theme", "c", "clear", "?", "help", "q", "quit"))

	out := m.output
	if visible := m.height - 2; visible > 0 && len(out) > visible {
		out = out[len(out)-visible:]
	}
	right := st.output.Width(outputWidth).Render(strings.Join(out, "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), right)
	if m.showHelp {
		k := m.sess.Kind()
		help := helpText + "\n\n" + m.registry.Title(k) + ": " + m.registry.Info(k)
		return st.panel.Render(help) + "\n\n" + body
	}
	return body
}

const helpText = `KEYBOARD SHORTCUTS

  Space   play / pause / resume
  R       replay from the original dataset
  A       next algorithm
  O       toggle ascending / descending
  + / -   faster / slower
  T       cycle themes
  C       clear output
  ?       toggle this help
  Q       quit

Only bubble sort is animated step by step;
other algorithms jump to the final answer.`

// Run starts the TUI and blocks until the user quits. reload, when non-nil,
// receives the program so a file watcher can send ReloadMsg.
func Run[T cmp.Ordered](m Model[T], reload func(p *tea.Program)) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if reload != nil {
		reload(p)
	}
	_, err := p.Run()
	return err
}
