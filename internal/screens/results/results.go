package results

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/repograde/internal/render"
	"github.com/abhisek/repograde/internal/report"
	"github.com/abhisek/repograde/internal/screen"
	"github.com/abhisek/repograde/internal/ui/components"
	"github.com/abhisek/repograde/internal/ui/layout"
	"github.com/abhisek/repograde/internal/ui/theme"
)

// headerLines is the height of the fixed block above the scrolling report.
const headerLines = 3

// ResultsScreen shows one rendered report with vertical scrolling.
type ResultsScreen struct {
	doc     report.Document
	repoURL string
	style   string

	width      int
	bodyHeight int
	lines      []string
	renderErr  error
	offset     int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for doc. style is the glamour style name.
func New(doc report.Document, repoURL, style string) *ResultsScreen {
	return &ResultsScreen{doc: doc, repoURL: repoURL, style: style}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Report"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "PgUp/PgDn", Description: "Page"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	page := s.bodyHeight - 1
	if page < 1 {
		page = 1
	}

	switch kmsg.String() {
	case "up", "k":
		s.scroll(-1)
	case "down", "j":
		s.scroll(1)
	case "pgup", "b":
		s.scroll(-page)
	case "pgdown", "space", " ":
		s.scroll(page)
	case "home", "g":
		s.offset = 0
	case "end", "G":
		s.offset = s.maxOffset()
	}
	return s, nil
}

func (s *ResultsScreen) scroll(delta int) {
	s.offset += delta
	s.clamp()
}

func (s *ResultsScreen) maxOffset() int {
	m := len(s.lines) - s.bodyHeight
	if m < 0 {
		return 0
	}
	return m
}

func (s *ResultsScreen) clamp() {
	if s.offset > s.maxOffset() {
		s.offset = s.maxOffset()
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// ensureRendered re-renders the report when the width changes.
func (s *ResultsScreen) ensureRendered(width int) {
	if s.lines != nil && s.width == width {
		return
	}
	s.width = width

	term, err := render.NewTerminal(width-2, s.style)
	if err != nil {
		s.renderErr = err
		s.lines = []string{}
		return
	}
	out, err := term.Render(s.doc)
	if err != nil {
		s.renderErr = err
		s.lines = []string{}
		return
	}
	s.renderErr = nil
	s.lines = strings.Split(out, "\n")
}

func (s *ResultsScreen) View(width, height int) string {
	s.ensureRendered(width)
	s.bodyHeight = height - headerLines
	if s.bodyHeight < 1 {
		s.bodyHeight = 1
	}
	s.clamp()

	title := theme.Title.Render("Grading Report for " + s.repoURL)
	bar := components.NewScoreBar("Overall", s.doc.TotalScore, width-2).View()

	if s.renderErr != nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, bar, "",
			theme.Warning.Render("Could not render report: "+s.renderErr.Error()))
	}

	end := s.offset + s.bodyHeight
	if end > len(s.lines) {
		end = len(s.lines)
	}
	body := strings.Join(s.lines[s.offset:end], "\n")

	return lipgloss.JoinVertical(lipgloss.Left, title, bar, "", body)
}
