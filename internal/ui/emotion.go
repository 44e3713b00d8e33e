package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindsyncapp/mindsync/internal/backend"
)

// emotionViewState holds the mood check-in form state.
type emotionViewState struct {
	input       textinput.Model
	wait        spinner.Model
	classifying bool
	saving      bool
	result      *backend.EmotionResult
	errText     string
}

func newEmotionViewState() emotionViewState {
	input := textinput.New()
	input.Placeholder = "How are you feeling about studying today?"
	input.CharLimit = 280
	input.Width = 56

	wait := spinner.New()
	wait.Spinner = spinner.Dot

	return emotionViewState{input: input, wait: wait}
}

func (s emotionViewState) focused() bool {
	return s.input.Focused()
}

func (s emotionViewState) focus() (emotionViewState, tea.Cmd) {
	return s, s.input.Focus()
}

func (s emotionViewState) blurred() emotionViewState {
	s.input.Blur()
	return s
}

func (s emotionViewState) update(msg tea.Msg) (emotionViewState, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// handleEmotionKey processes keyboard input for the mood check-in view.
func (m Model) handleEmotionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.emotionView.classifying || m.emotionView.saving {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.emotionView.input.Value())
		if text == "" {
			m.emotionView.errText = "Please describe how you feel first."
			return m, nil
		}
		m.emotionView.classifying = true
		m.emotionView.errText = ""
		m.emotionView.result = nil
		return m, tea.Batch(
			m.emotionView.wait.Tick,
			classifyCmd(m.ctx, m.client, text),
		)

	case "ctrl+s":
		if m.emotionView.result == nil {
			m.emotionView.errText = "Classify your mood before saving."
			return m, nil
		}
		m.emotionView.saving = true
		return m, tea.Batch(
			m.emotionView.wait.Tick,
			logEmotionCmd(m.ctx, m.client, *m.emotionView.result, m.emotionView.input.Value()),
		)
	}

	var cmd tea.Cmd
	m.emotionView.input, cmd = m.emotionView.input.Update(msg)
	return m, cmd
}

// renderEmotion renders the mood check-in form.
func (m Model) renderEmotion() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render("Mood check-in"))
	b.WriteString("\n\n")

	b.WriteString(m.emotionView.input.View())
	b.WriteString("\n\n")

	switch {
	case m.emotionView.classifying:
		b.WriteString(m.emotionView.wait.View())
		b.WriteString(styles.MutedText.Render(" Reading your mood..."))

	case m.emotionView.saving:
		b.WriteString(m.emotionView.wait.View())
		b.WriteString(styles.MutedText.Render(" Saving..."))

	case m.emotionView.errText != "":
		b.WriteString(styles.DangerText.Render(m.emotionView.errText))

	case m.emotionView.result != nil:
		result := m.emotionView.result
		b.WriteString(styles.EmotionStyle(result.Emotion).Render(result.Emotion))
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("  %.0f%% confident", result.Confidence)))
		b.WriteString("\n\n")
		if result.Motivation != "" {
			b.WriteString(styles.Text.Render(wrap(result.Motivation, 56)))
			b.WriteString("\n\n")
		}
		b.WriteString(styles.FaintText.Render("ctrl+s to save this check-in"))

	default:
		b.WriteString(styles.FaintText.Render("enter to classify, esc to go back"))
	}

	return styles.Panel.Width(64).Render(b.String())
}

// wrap does simple word wrapping at the given width.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			b.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}

// Messages

type classifyResultMsg struct {
	result *backend.EmotionResult
	err    error
}

type logEmotionResultMsg struct {
	err error
}

func (m Model) handleClassifyResult(msg classifyResultMsg) (tea.Model, tea.Cmd) {
	m.emotionView.classifying = false
	if msg.err != nil {
		m.emotionView.errText = errorMessage(msg.err)
		return m, nil
	}
	m.emotionView.result = msg.result
	m.emotionView.errText = ""
	return m, nil
}

func (m Model) handleLogEmotionResult(msg logEmotionResultMsg) (tea.Model, tea.Cmd) {
	m.emotionView.saving = false
	if msg.err != nil {
		m.emotionView.errText = errorMessage(msg.err)
		return m, nil
	}
	m.setNotice("Mood check-in saved")
	m.emotionView.result = nil
	m.emotionView.input.SetValue("")
	return m, nil
}

// Commands

func classifyCmd(ctx context.Context, client *backend.Client, text string) tea.Cmd {
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		result, err := client.ClassifyEmotion(reqCtx, text, "")
		return classifyResultMsg{result: result, err: err}
	}
}

func logEmotionCmd(ctx context.Context, client *backend.Client, result backend.EmotionResult, notes string) tea.Cmd {
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		draft := backend.EmotionLogDraft{
			Emotion:    result.Emotion,
			Confidence: result.Confidence,
			Notes:      strings.TrimSpace(notes),
			Source:     "text",
		}
		_, err := client.AppendEmotionLog(reqCtx, draft)
		return logEmotionResultMsg{err: err}
	}
}
