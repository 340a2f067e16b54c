package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/service/chat"
	"github.com/sandevgo/auralis/internal/service/command"
	"github.com/sandevgo/auralis/internal/service/ui"
	"github.com/sandevgo/auralis/pkg/log"
)

const (
	toastDuration = 4 * time.Second
	inputHeight   = 3
	headerHeight  = 1
	footerHeight  = 1

	busyText = "Aguarde a resposta de Auralis."
)

type turnDoneMsg struct {
	text string
	msg  core.ChatMessage
	err  error
}

// sessionEventMsg carries a transcript change from the session goroutine.
type sessionEventMsg chat.Event

type commandDoneMsg struct{}

type clearToastMsg struct {
	id int
}

// Model is the bubbletea chat window bound to one chat session.
type Model struct {
	ctx     context.Context
	session *chat.Session
	router  core.CmdRouter

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	width, height int
	ready         bool
	toast         string
	toastID       int
	// pending is set when a turn is dispatched, before the session gate.
	pending bool
}

func New(ctx context.Context, session *chat.Session, router core.CmdRouter) Model {
	ti := textinput.New()
	ti.Placeholder = "Digite sua mensagem... (/help para comandos)"
	ti.Prompt = "› "
	ti.CharLimit = 4000
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.AssistantLabelStyle

	return Model{
		ctx:      ctx,
		session:  session,
		router:   router,
		input:    ti,
		viewport: viewport.New(80, 20),
		spinner:  sp,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, session *chat.Session, router core.CmdRouter) error {
	p := tea.NewProgram(New(ctx, session, router), tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := session.Subscribe(func(e chat.Event) {
		p.Send(sessionEventMsg(e))
	})
	defer unsubscribe()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-inputHeight-footerHeight, 3)
		m.input.Width = max(msg.Width-6, 10)
		m.renderer = newRenderer(msg.Width - 4)
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			cmd := m.submit()
			cmds = append(cmds, cmd)
			m.refresh()
			return m, tea.Batch(cmds...)
		}

	case turnDoneMsg:
		m.pending = false
		switch {
		case errors.Is(msg.err, chat.ErrBusy):
			if m.input.Value() == "" {
				m.input.SetValue(msg.text)
			}
			cmds = append(cmds, m.showToast(busyText))
		case msg.err != nil:
			cmds = append(cmds, m.showToast(msg.err.Error()))
		}
		m.refresh()

	case sessionEventMsg:
		if msg.Kind == chat.EventFailed {
			cmds = append(cmds, m.showToast(msg.Message.Text))
		}
		m.refresh()

	case commandDoneMsg:
		m.refresh()

	case clearToastMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
		if m.session.State() == chat.StateAwaiting {
			m.refresh()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit hands the input to the router or the session. Both run off the
// update loop; the transcript is re-read when they finish.
func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}
	if m.pending || m.session.State() == chat.StateAwaiting {
		return m.showToast(busyText)
	}
	m.input.Reset()

	ctx, session, router := m.ctx, m.session, m.router
	if strings.HasPrefix(text, "/") && router != nil {
		return func() tea.Msg {
			if out, ok := router.Execute(ctx, session.ID(), text); ok {
				session.Note(out)
			}
			return commandDoneMsg{}
		}
	}

	m.pending = true
	return func() tea.Msg {
		reply, err := session.Submit(ctx, text)
		if err != nil {
			log.FromCtx(ctx).Debug().Err(err).Msg("input rejected")
		}
		return turnDoneMsg{text: text, msg: reply, err: err}
	}
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toastID++
	m.toast = text
	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{id: id}
	})
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.renderTranscript())
	if atBottom || m.session.State() == chat.StateAwaiting {
		m.viewport.GotoBottom()
	}
}

func (m Model) renderTranscript() string {
	var sb strings.Builder
	for _, msg := range m.session.Transcript() {
		sb.WriteString(m.renderMessage(msg))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderMessage(msg core.ChatMessage) string {
	stamp := ui.DescStyle.Render(msg.Timestamp.Format("15:04"))

	switch msg.Sender {
	case core.SenderUser:
		return fmt.Sprintf("%s %s\n%s\n", ui.UserLabelStyle.Render("Você"), stamp, wrap(msg.Text, m.width-2))

	case core.SenderAssistant:
		header := fmt.Sprintf("%s %s", ui.AssistantLabelStyle.Render("Auralis"), stamp)
		if msg.Typing {
			return fmt.Sprintf("%s\n%s %s\n", header, m.spinner.View(), ui.DescStyle.Render("pensando..."))
		}
		body := m.renderMarkdown(msg.Text)
		if msg.Thoughts != nil {
			body += "\n" + ui.ThoughtsStyle.Render(fmt.Sprintf("💭 %s · %s · %d/10",
				msg.Thoughts.Reflection, msg.Thoughts.Emotion, msg.Thoughts.Importance))
		}
		return header + "\n" + body + "\n"

	default:
		if strings.HasPrefix(msg.Text, "Erro: ") {
			return ui.SystemStyle.Foreground(lipgloss.Color("1")).Render(wrap(msg.Text, m.width-2)) + "\n"
		}
		return m.renderMarkdown(msg.Text)
	}
}

func (m Model) renderMarkdown(md string) string {
	if m.renderer == nil {
		return md + "\n"
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md + "\n"
	}
	return strings.TrimRight(out, "\n") + "\n"
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Conectando a Auralis..."
	}

	header := ui.HeaderStyle.Render("Auralis")
	if m.pending || m.session.State() == chat.StateAwaiting {
		header += " " + m.spinner.View()
	}

	footer := ui.DescStyle.Render("enter enviar · ↑/↓ rolar · esc sair")
	if m.toast != "" {
		footer = ui.ToastStyle.Render(m.toast)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		ui.InputBorderStyle.Width(max(m.width-2, 10)).Render(m.input.View()),
		footer,
	)
}

func newRenderer(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return nil
	}
	return r
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
