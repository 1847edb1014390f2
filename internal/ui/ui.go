// Package ui renders the terminal interface: tabbed browsing of the
// collection, URL capture, the weekly planner, the shopping list, and a
// step-by-step cooking mode.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"clipchef/internal/app"
	"clipchef/internal/domain"
	"clipchef/internal/logger"
)

type viewID int

const (
	viewHome viewID = iota
	viewCapture
	viewPlanner
	viewShopping
	viewDetail
	viewCooking
)

var tabNames = []string{"Recipes", "Capture", "Planner", "Shopping"}

// UI owns the bubbletea program and doubles as the notification sink:
// timer alerts from the supervisor arrive here and surface in the
// status line of whatever view is active.
type UI struct {
	program *tea.Program
	log     *logger.Logger
}

var _ domain.Notifier = (*UI)(nil)

func New(a *app.App, log *logger.Logger) *UI {
	m := newModel(a, log)
	return &UI{
		program: tea.NewProgram(m, tea.WithAltScreen()),
		log:     log,
	}
}

func (u *UI) Run() error {
	_, err := u.program.Run()
	return err
}

func (u *UI) Notify(_ context.Context, message string) error {
	u.program.Send(noticeMsg{text: message})
	return nil
}

func (u *UI) NotifyUrgent(_ context.Context, message string) error {
	u.program.Send(noticeMsg{text: message, urgent: true})
	return nil
}

// Messages

type tickMsg time.Time

type noticeMsg struct {
	text   string
	urgent bool
}

type captureDoneMsg struct {
	recipe *domain.Recipe
	err    error
}

type model struct {
	app *app.App
	log *logger.Logger

	view   viewID
	width  int
	height int

	notice       string
	noticeUrgent bool
	noticeUntil  time.Time

	// home
	cursor int

	// capture
	urlInput   textinput.Model
	spin       spinner.Model
	capturing  bool
	captureErr string
	lastSaved  string

	// detail
	detailID     string
	detailCursor int

	// planner
	weekStart time.Time
	planDay   int
	planSlot  int
	assigning bool
	assignIdx int
}

func newModel(a *app.App, log *logger.Logger) *model {
	ti := textinput.New()
	ti.Placeholder = "https://..."
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &model{
		app:       a,
		log:       log,
		urlInput:  ti,
		spin:      sp,
		weekStart: startOfWeek(time.Now()),
	}
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func captureCmd(a *app.App, url string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()
		r, err := a.Capture(ctx, url)
		return captureDoneMsg{recipe: r, err: err}
	}
}

func (m *model) setNotice(text string, urgent bool) {
	m.notice = text
	m.noticeUrgent = urgent
	m.noticeUntil = time.Now().Add(8 * time.Second)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.notice != "" && time.Now().After(m.noticeUntil) {
			m.notice = ""
		}
		return m, tickCmd()

	case noticeMsg:
		m.setNotice(msg.text, msg.urgent)
		return m, nil

	case captureDoneMsg:
		m.capturing = false
		if msg.err != nil {
			m.captureErr = msg.err.Error()
			return m, nil
		}
		m.captureErr = ""
		m.lastSaved = msg.recipe.Title
		m.urlInput.Reset()
		return m, nil

	case spinner.TickMsg:
		if !m.capturing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The capture field swallows printable keys, so the global
	// bindings below only apply when it is not focused.
	if m.view == viewCapture && m.urlInput.Focused() {
		return m.handleCaptureKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1":
		m.switchTab(viewHome)
		return m, nil
	case "2":
		m.switchTab(viewCapture)
		return m, textinput.Blink
	case "3":
		m.switchTab(viewPlanner)
		return m, nil
	case "4":
		m.switchTab(viewShopping)
		return m, nil
	case "tab":
		next := (m.tabIndex() + 1) % len(tabNames)
		cmd := m.switchTab(viewID(next))
		return m, cmd
	}

	switch m.view {
	case viewHome:
		return m.handleHomeKey(msg)
	case viewPlanner:
		return m.handlePlannerKey(msg)
	case viewDetail:
		return m.handleDetailKey(msg)
	case viewCooking:
		return m.handleCookingKey(msg)
	}
	return m, nil
}

// tabIndex maps overlay views back to the tab they were opened from.
func (m *model) tabIndex() int {
	switch m.view {
	case viewCapture:
		return 1
	case viewPlanner:
		return 2
	case viewShopping:
		return 3
	default:
		return 0
	}
}

func (m *model) switchTab(v viewID) tea.Cmd {
	m.urlInput.Blur()
	m.assigning = false
	m.view = v
	if v == viewCapture {
		m.urlInput.Focus()
		return textinput.Blink
	}
	return nil
}

func (m *model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	recipes := m.app.Recipes()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(recipes)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(recipes) {
			m.detailID = recipes[m.cursor].ID
			m.detailCursor = 0
			m.view = viewDetail
		}
	case "d":
		if m.cursor < len(recipes) {
			if err := m.app.DeleteRecipe(context.Background(), recipes[m.cursor].ID); err != nil {
				m.log.Error("delete recipe: %v", err)
			}
			if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

func (m *model) handleCaptureKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.urlInput.Blur()
		return m, nil
	case "ctrl+v":
		if text, err := clipboard.ReadAll(); err == nil {
			m.urlInput.SetValue(strings.TrimSpace(text))
			m.urlInput.CursorEnd()
		} else {
			m.log.Warn("clipboard read: %v", err)
		}
		return m, nil
	case "enter":
		url := strings.TrimSpace(m.urlInput.Value())
		if url == "" || m.capturing {
			return m, nil
		}
		m.capturing = true
		m.captureErr = ""
		m.lastSaved = ""
		return m, tea.Batch(m.spin.Tick, captureCmd(m.app, url))
	}
	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m *model) handlePlannerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.assigning {
		return m.handleAssignKey(msg)
	}
	switch msg.String() {
	case "up", "k":
		if m.planDay > 0 {
			m.planDay--
		}
	case "down", "j":
		if m.planDay < 6 {
			m.planDay++
		}
	case "left", "h":
		if m.planSlot > 0 {
			m.planSlot--
		}
	case "right", "l":
		if m.planSlot < len(domain.Slots)-1 {
			m.planSlot++
		}
	case "[":
		m.weekStart = m.weekStart.AddDate(0, 0, -7)
	case "]":
		m.weekStart = m.weekStart.AddDate(0, 0, 7)
	case "enter":
		if len(m.app.Recipes()) > 0 {
			m.assigning = true
			m.assignIdx = 0
		}
	case "x":
		date := domain.FormatPlanDate(m.weekStart.AddDate(0, 0, m.planDay))
		if err := m.app.SetMeal(context.Background(), date, domain.Slots[m.planSlot], ""); err != nil {
			m.log.Error("clear meal: %v", err)
		}
	}
	return m, nil
}

func (m *model) handleAssignKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	recipes := m.app.Recipes()
	switch msg.String() {
	case "esc":
		m.assigning = false
	case "up", "k":
		if m.assignIdx > 0 {
			m.assignIdx--
		}
	case "down", "j":
		if m.assignIdx < len(recipes)-1 {
			m.assignIdx++
		}
	case "enter":
		if m.assignIdx < len(recipes) {
			date := domain.FormatPlanDate(m.weekStart.AddDate(0, 0, m.planDay))
			if err := m.app.SetMeal(context.Background(), date, domain.Slots[m.planSlot], recipes[m.assignIdx].ID); err != nil {
				m.log.Error("set meal: %v", err)
			}
		}
		m.assigning = false
	}
	return m, nil
}

func (m *model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r, err := m.app.Recipe(m.detailID)
	if err != nil {
		m.view = viewHome
		return m, nil
	}
	rows := len(r.Ingredients) + len(r.Steps)
	switch msg.String() {
	case "esc":
		m.view = viewHome
	case "up", "k":
		if m.detailCursor > 0 {
			m.detailCursor--
		}
	case "down", "j":
		if m.detailCursor < rows-1 {
			m.detailCursor++
		}
	case " ", "enter":
		if rows == 0 {
			return m, nil
		}
		ctx := context.Background()
		if m.detailCursor < len(r.Ingredients) {
			_, err = m.app.ToggleIngredient(ctx, r.ID, r.Ingredients[m.detailCursor].ID)
		} else {
			_, err = m.app.ToggleStep(ctx, r.ID, r.Steps[m.detailCursor-len(r.Ingredients)].ID)
		}
		if err != nil {
			m.log.Error("toggle: %v", err)
		}
	case "c":
		if _, err := m.app.StartCooking(r.ID); err != nil {
			m.setNotice("Cannot start cooking: "+err.Error(), true)
			return m, nil
		}
		m.view = viewCooking
	case "d":
		if err := m.app.DeleteRecipe(context.Background(), r.ID); err != nil {
			m.log.Error("delete recipe: %v", err)
		}
		m.view = viewHome
	}
	return m, nil
}

func (m *model) handleCookingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sess := m.app.ActiveSession()
	if sess == nil {
		m.view = viewDetail
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.app.EndCooking()
		m.view = viewDetail
	case "right", "n", "enter":
		if done := sess.Next(); done {
			m.app.EndCooking()
			m.setNotice("All steps complete. Enjoy!", false)
			m.view = viewDetail
		}
	case "left", "p":
		sess.Prev()
	case "t":
		m.app.StartStepTimer(sess)
	}
	return m, nil
}
