package form

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/repograde/internal/grader"
	"github.com/abhisek/repograde/internal/report"
	"github.com/abhisek/repograde/internal/router"
	"github.com/abhisek/repograde/internal/screen"
	"github.com/abhisek/repograde/internal/screens/results"
	"github.com/abhisek/repograde/internal/ui/components"
	"github.com/abhisek/repograde/internal/ui/layout"
	"github.com/abhisek/repograde/internal/ui/theme"
)

// gradeDoneMsg carries the outcome of one submission back to the screen.
type gradeDoneMsg struct {
	RepoURL string
	Report  *grader.Report
	Err     error
}

// FormScreen takes a repository URL and submits it for grading.
type FormScreen struct {
	ctx     context.Context
	session *grader.Session
	style   string

	input   components.TextInput
	button  components.Button
	spinner components.Spinner
	busy    bool
	errMsg  string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the form. Submissions run under ctx through session; style
// is passed on to the results screen.
func New(ctx context.Context, session *grader.Session, style string) *FormScreen {
	return &FormScreen{
		ctx:     ctx,
		session: session,
		style:   style,
		input:   components.NewTextInput("https://github.com/owner/repo", 0),
		button:  components.NewButton("Grade Repository", "Grading..."),
	}
}

func (s *FormScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *FormScreen) Title() string {
	return "Grade a Repository"
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	if s.busy {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Grade"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gradeDoneMsg:
		return s, s.handleDone(msg)

	case components.SpinnerTickMsg:
		if !s.busy {
			return s, nil
		}
		s.spinner = s.spinner.Advance()
		return s, s.spinner.Tick()

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return s, s.submit()
		}
		if s.busy {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *FormScreen) submit() tea.Cmd {
	if s.busy || s.session.Busy() {
		return nil
	}
	s.busy = true
	s.button.Disabled = true
	s.errMsg = ""
	return tea.Batch(s.gradeCmd(s.input.Value()), s.spinner.Tick())
}

func (s *FormScreen) gradeCmd(repoURL string) tea.Cmd {
	ctx, session := s.ctx, s.session
	return func() tea.Msg {
		rep, err := session.Submit(ctx, repoURL)
		return gradeDoneMsg{RepoURL: repoURL, Report: rep, Err: err}
	}
}

func (s *FormScreen) handleDone(msg gradeDoneMsg) tea.Cmd {
	s.busy = false
	s.button.Disabled = false

	if msg.Err != nil {
		s.errMsg = grader.UserMessage(msg.Err)
		return nil
	}

	next := results.New(report.Build(msg.Report), msg.RepoURL, s.style)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *FormScreen) View(width, height int) string {
	sections := []string{
		theme.Title.Render("Repository Grader"),
		theme.Subtitle.Render("Paste a repository URL and press Enter."),
		"",
		s.input.View(),
		"",
		s.button.View(),
	}

	if s.busy {
		sections = append(sections, "", s.spinner.View("Grading can take a few minutes..."))
	}
	if s.errMsg != "" {
		sections = append(sections, "", theme.Warning.Render("✗ "+s.errMsg))
	}

	cardWidth := width - 8
	if cardWidth > 80 {
		cardWidth = 80
	}
	card := theme.Card.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
