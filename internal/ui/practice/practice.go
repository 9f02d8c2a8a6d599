// Package practice hosts the interactive drill as a Bubble Tea program
// over a composed session queue.
package practice

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/nosziii/words/internal/session"
	"github.com/nosziii/words/internal/ui/theme"
)

// SubmitFunc records one graded answer and returns the XP gained. The cmd
// layer wires it to the review coordinator.
type SubmitFunc func(cardID string, correct bool) (int, error)

// answerRecordedMsg reports that a submission was committed (or failed).
type answerRecordedMsg struct {
	correct bool
	xp      int
	err     error
}

// Model drills a queue card by card: type the translation, Enter submits,
// any key dismisses the feedback, Esc quits.
type Model struct {
	queue  *session.Queue
	submit SubmitFunc
	input  textinput.Model

	showingFeedback bool
	lastCorrect     bool
	lastAnswer      string
	lastXP          int

	answered int
	correct  int
	errMsg   string
	quitting bool
}

// New creates a drill model over the queue.
func New(queue *session.Queue, submit SubmitFunc) Model {
	return Model{
		queue:  queue,
		submit: submit,
		input:  newInput(),
	}
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Type the translation..."
	ti.CharLimit = 120
	ti.Focus()
	return ti
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case answerRecordedMsg:
		return m.handleRecorded(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

		if m.showingFeedback {
			m.showingFeedback = false
			if m.queue.Done() {
				m.quitting = true
				return m, tea.Quit
			}
			m.input = newInput()
			return m, m.input.Focus()
		}

		if msg.String() == "enter" {
			return m.submitCurrent()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitCurrent() (tea.Model, tea.Cmd) {
	card, ok := m.queue.Current()
	if !ok {
		m.quitting = true
		return m, tea.Quit
	}
	answer := strings.TrimSpace(m.input.Value())
	if answer == "" {
		return m, nil
	}

	correct := strings.EqualFold(answer, card.Answer)
	m.lastAnswer = card.Answer

	return m, func() tea.Msg {
		xp, err := m.submit(card.ID, correct)
		return answerRecordedMsg{correct: correct, xp: xp, err: err}
	}
}

func (m Model) handleRecorded(msg answerRecordedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		m.quitting = true
		return m, tea.Quit
	}

	m.answered++
	if msg.correct {
		m.correct++
	}
	m.lastCorrect = msg.correct
	m.lastXP = msg.xp
	m.showingFeedback = true

	// A miss re-queues the card a couple of positions ahead.
	m.queue.Record(msg.correct)

	return m, nil
}

func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	var b strings.Builder

	if m.showingFeedback {
		if m.lastCorrect {
			b.WriteString(theme.Good.Render("correct") + fmt.Sprintf("  +%d XP", m.lastXP))
		} else {
			b.WriteString(theme.Bad.Render("wrong") + "  " + theme.Hint.Render("answer: "+m.lastAnswer))
		}
		b.WriteString("\n\n" + theme.Hint.Render("press any key to continue"))
		return tea.NewView(b.String())
	}

	card, ok := m.queue.Current()
	if !ok {
		return tea.NewView("")
	}

	b.WriteString(fmt.Sprintf("%s %s\n\n", theme.Label.Render("translate:"), theme.Value.Render(card.Prompt)))
	b.WriteString(m.input.View())
	b.WriteString("\n\n" + theme.Hint.Render("enter submit · esc quit"))
	return tea.NewView(b.String())
}

// Answered returns how many prompts were graded and how many were correct.
func (m Model) Answered() (answered, correct int) {
	return m.answered, m.correct
}

// Run drills the queue to completion (or until the learner quits) and
// returns the session tally.
func Run(queue *session.Queue, submit SubmitFunc) (answered, correct int, err error) {
	p := tea.NewProgram(New(queue, submit))
	final, err := p.Run()
	if err != nil {
		return 0, 0, err
	}
	m, ok := final.(Model)
	if !ok {
		return 0, 0, fmt.Errorf("unexpected final model %T", final)
	}
	if m.errMsg != "" {
		return m.answered, m.correct, fmt.Errorf("recording answer: %s", m.errMsg)
	}
	return m.answered, m.correct, nil
}
