package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moodrec/internal/domain"
	"moodrec/internal/styles"
)

// RecommenderPort is the TUI-facing subset of the recommendation engine.
type RecommenderPort interface {
	Genres() []string
	ResolveGenre(input string) (string, error)
	Recommend(ctx context.Context, q domain.Query) (domain.Result, error)
}

type stage int

const (
	stageName stage = iota
	stageGenre
	stageMood
	stageRating
	stageScoring
	stageResults
)

type resultMsg struct {
	result domain.Result
	err    error
}

// Model is the Bubble Tea model walking the user through one query at a time.
type Model struct {
	service  RecommenderPort
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	stage    stage
	topN     int
	name     string
	query    domain.Query
	result   domain.Result
	status   string
	ready    bool
}

// New creates a TUI model. A non-empty name skips the name prompt.
func New(service RecommenderPort, name string, topN int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 0
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m := Model{
		service:  service,
		input:    ti,
		spinner:  sp,
		viewport: viewport.New(0, 0),
		topN:     topN,
		name:     strings.TrimSpace(name),
		status:   "Let's find the perfect movie for you!",
	}
	if m.name == "" {
		m.stage = stageName
	} else {
		m.stage = stageGenre
	}
	m.input.Placeholder = m.placeholder()
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and result events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		vh := msg.Height - 8
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderBody())
		return m, nil
	case spinner.TickMsg:
		if m.stage != stageScoring {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case resultMsg:
		m.stage = stageResults
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			m.result = domain.Result{}
		} else {
			m.result = msg.result
			m.status = "Press r for a new search, q to quit."
		}
		m.viewport.SetContent(m.renderBody())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if m.stage == stageScoring {
			return m, nil
		}
		if m.stage == stageResults {
			switch msg.String() {
			case "q", "esc":
				return m, tea.Quit
			case "r":
				return m.restart(), textinput.Blink
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		if msg.Type == tea.KeyEnter {
			return m.submit(strings.TrimSpace(m.input.Value()))
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit consumes the answer to the current prompt.
func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageName:
		if value == "" {
			m.status = "Please enter your name."
			return m, nil
		}
		m.name = value
		m.stage = stageGenre
		m.status = "Hello, " + value + "!"
	case stageGenre:
		if value != "" {
			genre, err := m.service.ResolveGenre(value)
			if err != nil {
				var inv *domain.InvalidGenreError
				if errors.As(err, &inv) {
					m.status = "Invalid genre. Please try again."
				} else {
					m.status = "Error: " + err.Error()
				}
				m.input.SetValue("")
				return m, nil
			}
			value = genre
		}
		m.query.Genre = value
		m.stage = stageMood
		m.status = ""
	case stageMood:
		m.query.Mood = value
		m.stage = stageRating
	case stageRating:
		if value != "" {
			r, err := strconv.ParseFloat(value, 64)
			if err != nil {
				m.status = "Invalid rating. Enter a number or leave blank."
				m.input.SetValue("")
				return m, nil
			}
			m.query.MinRating = &r
		}
		m.query.TopN = m.topN
		m.stage = stageScoring
		m.status = "Analyzing movie sentiments"
		m.input.SetValue("")
		return m, tea.Batch(m.spinner.Tick, m.recommend(m.query))
	}
	m.input.SetValue("")
	m.input.Placeholder = m.placeholder()
	m.viewport.SetContent(m.renderBody())
	return m, nil
}

func (m Model) recommend(q domain.Query) tea.Cmd {
	svc := m.service
	return func() tea.Msg {
		res, err := svc.Recommend(context.Background(), q)
		return resultMsg{result: res, err: err}
	}
}

func (m Model) restart() Model {
	m.stage = stageGenre
	m.query = domain.Query{}
	m.result = domain.Result{}
	m.status = "Let's find another movie."
	m.input.SetValue("")
	m.input.Placeholder = m.placeholder()
	m.viewport.SetContent(m.renderBody())
	return m
}

func (m Model) placeholder() string {
	switch m.stage {
	case stageName:
		return "Your name"
	case stageGenre:
		return "Genre number or name (blank for any)"
	case stageMood:
		return "Your mood (positive/negative/neutral) or leave blank"
	case stageRating:
		return "Minimum rating, e.g. 7.5, or leave blank"
	default:
		return ""
	}
}

// View renders the header, the current body and the prompt or status line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Mood Movie Recommender")
	body := resultBoxStyle.Render(m.viewport.View())
	status := statusStyle.Render(m.status)
	switch m.stage {
	case stageScoring:
		return header + "\n" + body + "\n" + m.spinner.View() + " " + status
	case stageResults:
		return header + "\n" + body + "\n" + status
	default:
		return header + "\n" + body + "\n" + queryBoxStyle.Render(m.input.View()) + "\n" + status
	}
}

func (m Model) renderBody() string {
	switch m.stage {
	case stageName:
		return "Welcome! What should I call you?"
	case stageGenre:
		return "Available genres:\n" + styles.Genres(m.service.Genres())
	case stageMood:
		return fmt.Sprintf("Genre: %s\nHow are you feeling today?", orAny(m.query.Genre))
	case stageRating:
		return fmt.Sprintf("Genre: %s\nMood: %s\nMinimum rating?", orAny(m.query.Genre), orAny(m.query.Mood))
	case stageResults:
		return styles.Recommendations(m.name, m.result)
	default:
		return ""
	}
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
