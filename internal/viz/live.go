package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/odelab/internal/ivp"
)

const historyCapacity = 600

type TickMsg time.Time

// Live is a Bubble Tea model stepping a solve at a fixed frame rate and
// charting the first state component as it evolves.
type Live struct {
	sys       ivp.System
	stepper   ivp.Stepper
	ref       ivp.Analytic
	state     ivp.State
	initial   ivp.State
	t         float64
	t0        float64
	t1        float64
	dt        float64
	problem   string
	method    string
	frameRate int
	running   bool
	done      bool
	history   []float64
}

func NewLive(sys ivp.System, st ivp.Stepper, x0 ivp.State, t0, t1, dt float64, problem, method string, frameRate int) Live {
	if frameRate < 1 {
		frameRate = 1
	}
	ref, _ := sys.(ivp.Analytic)
	return Live{
		sys:       sys,
		stepper:   st,
		ref:       ref,
		state:     x0.Clone(),
		initial:   x0.Clone(),
		t:         t0,
		t0:        t0,
		t1:        t1,
		dt:        dt,
		problem:   problem,
		method:    method,
		frameRate: frameRate,
		running:   true,
		history:   make([]float64, 0, historyCapacity),
	}
}

func (m Live) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Live) Init() tea.Cmd {
	return m.tick()
}

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = m.initial.Clone()
			m.t = m.t0
			m.done = false
			m.history = m.history[:0]
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done {
			m.state = m.stepper.Step(m.sys, m.state, m.t, m.dt)
			m.t += m.dt
			if m.t >= m.t1 {
				m.done = true
			}

			m.history = append(m.history, m.state[0])
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Live) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s / %s", m.problem, m.method)))
	b.WriteString("\n")

	if len(m.history) > 1 {
		b.WriteString(graphStyle.Render(Plot(m.history, "x0 vs time")))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("t"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.3f", m.t)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("x"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%v", []float64(m.state))))
	b.WriteString("\n")

	if !m.state.IsValid() {
		b.WriteString(errorStyle.Render("state diverged (NaN/Inf)"))
		b.WriteString("\n")
	} else if m.ref != nil {
		err := m.state.Sub(m.ref.Exact(m.t)).Norm()
		b.WriteString(labelStyle.Render("error"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.6f", err)))
		b.WriteString("\n")
	}

	status := "running"
	if m.done {
		status = "finished"
	} else if !m.running {
		status = "paused"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("[%s]  space pause · r reset · q quit", status)))

	return b.String()
}
