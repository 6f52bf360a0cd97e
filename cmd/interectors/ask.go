package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/interectors/client"
	"github.com/a-h/interectors/models"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

type AskCommand struct {
	ServerURL    string `help:"The URL of the API server." env:"INTERECTORS_URL" default:"http://localhost:8000"`
	ServerAPIKey string `help:"The API key for the API server." env:"INTERECTORS_API_KEY" default:""`
	URL          string `help:"The URL of the page to ask about." required:""`
}

func (c AskCommand) Run(ctx context.Context) (err error) {
	ic := client.New(c.ServerURL, c.ServerAPIKey)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	questions := make(chan string)
	answers := make(chan exchange)

	go func() {
		for {
			var q string
			select {
			case q = <-questions:
			case <-ctx.Done():
				return
			}
			resp, err := ic.QAPost(ctx, models.QAPostRequest{
				URL:      c.URL,
				Question: q,
			})
			select {
			case answers <- exchange{Question: q, Response: resp, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}()

	p := tea.NewProgram(newModel(ctx, c.URL, questions, answers))
	if _, err = p.Run(); err != nil {
		return err
	}
	return nil
}

// exchange is a question along with the server's answer or error.
type exchange struct {
	Question string
	Response models.QAPostResponse
	Err      error
	Pending  bool
}

// Dracula color scheme.
var (
	Background  = lipgloss.Color("#282a36")
	CurrentLine = lipgloss.Color("#44475a")
	Comment     = lipgloss.Color("#6272a4")
	Cyan        = lipgloss.Color("#8be9fd")
	Pink        = lipgloss.Color("#ff79c6")
	Purple      = lipgloss.Color("#bd93f9")
	Red         = lipgloss.Color("#ff5555")
)

var (
	headerStyle   = lipgloss.NewStyle().Background(CurrentLine).Foreground(Purple).Bold(true).Padding(1).Margin(1)
	questionStyle = lipgloss.NewStyle().Padding(1).Margin(1).MarginBottom(0).Background(Background).Foreground(Pink)
	answerStyle   = lipgloss.NewStyle().Padding(1).Margin(1).MarginBottom(0).Background(Background).Foreground(Cyan)
	featureStyle  = lipgloss.NewStyle().MarginLeft(2).Foreground(Comment)
	errorStyle    = lipgloss.NewStyle().Padding(1).Margin(1).MarginBottom(0).Background(Background).Foreground(Red)
)

type model struct {
	viewport viewport.Model
	textarea textarea.Model
	ctx      context.Context
	url      string
	width    int

	exchanges []exchange
	questions chan string
	answers   chan exchange
}

func newModel(ctx context.Context, url string, questions chan string, answers chan exchange) model {
	ta := textarea.New()
	ta.Placeholder = "Ask a question about the page..."
	ta.Focus()

	ta.Prompt = "┃ "
	ta.CharLimit = 280

	ta.SetHeight(3)

	// Remove cursor line styling
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()

	ta.ShowLineNumbers = false

	vp := viewport.New(80, 20)

	ta.KeyMap.InsertNewline.SetEnabled(false)

	m := model{
		ctx:       ctx,
		url:       url,
		width:     80,
		textarea:  ta,
		viewport:  vp,
		questions: questions,
		answers:   answers,
	}
	m.viewport.SetContent(m.render())
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.subscribeToAnswers(),
	)
}

func (m model) subscribeToAnswers() tea.Cmd {
	return func() tea.Msg {
		select {
		case x := <-m.answers:
			return x
		case <-m.ctx.Done():
			return nil
		}
	}
}

func formatExchange(e exchange, width int) string {
	var sb strings.Builder
	sb.WriteString(questionStyle.Render(wordwrap.String("🥷 "+e.Question, width)))
	sb.WriteString("\n")
	switch {
	case e.Pending:
		sb.WriteString(answerStyle.Render("✨ ..."))
	case e.Err != nil:
		sb.WriteString(errorStyle.Render(wordwrap.String("💥 "+e.Err.Error(), width)))
	default:
		sb.WriteString(answerStyle.Render(wordwrap.String(strings.TrimSpace("✨ "+e.Response.Answer), width)))
		sb.WriteString("\n")
		f := e.Response.Features
		sb.WriteString(featureStyle.Render(fmt.Sprintf("probability %.3f · content/question %.3f · content/answer %.3f · keywords %s",
			e.Response.Probability, f.ContentQuestionSimilarity, f.ContentAnswerSimilarity, strings.Join(f.TopAnswerKeywords, ", "))))
	}
	return sb.String()
}

func (m model) render() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(wordwrap.String("Asking about "+m.url, m.width)))
	sb.WriteString("\n")
	for _, e := range m.exchanges {
		sb.WriteString(formatExchange(e, m.width))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exchange:
		for i := len(m.exchanges) - 1; i >= 0; i-- {
			if m.exchanges[i].Pending && m.exchanges[i].Question == msg.Question {
				m.exchanges[i] = msg
				break
			}
		}
		m.viewport.SetContent(m.render())
		m.viewport.GotoBottom()
		return m, m.subscribeToAnswers()
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-8, 20)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - m.textarea.Height() - 3
		m.textarea.SetWidth(msg.Width)
		m.viewport.SetContent(m.render())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			v := strings.TrimSpace(m.textarea.Value())
			if v == "" {
				// Don't send empty questions.
				return m, nil
			}
			m.textarea.Reset()
			m.exchanges = append(m.exchanges, exchange{Question: v, Pending: true})
			m.viewport.SetContent(m.render())
			m.viewport.GotoBottom()
			ctx, questions := m.ctx, m.questions
			return m, func() tea.Msg {
				select {
				case questions <- v:
				case <-ctx.Done():
				}
				return nil
			}
		default:
			// Send all other keypresses to the textarea.
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			return m, cmd
		}

	case cursor.BlinkMsg:
		// Textarea should also process cursor blinks.
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

func (m model) View() string {
	return fmt.Sprintf("%s\n\n%s",
		m.viewport.View(),
		m.textarea.View(),
	) + "\n\n"
}
