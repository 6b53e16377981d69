// Package tui hosts the bottom sheet in a terminal user interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"SnapSheet/pkg/config"
	"SnapSheet/pkg/logger"
	"SnapSheet/pkg/sheet"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the TUI state
type Model struct {
	cfg     *config.Config
	cfgPath string
	log     *logger.Logger

	width  int
	height int
	ready  bool
	status string

	// Sheet
	panel       *sheet.Controller
	detents     []sheet.Detent
	transitions *transitionQueue
	gesture     gesture
	settle      settleAnimation
	content     viewport.Model

	tabs      sheet.TabSelection
	rootSheet *sheet.Modal
	settings  *sheet.Modal

	keys keyMap
	help help.Model

	// Settings sheet state
	settingsItems   []SettingsItem
	settingsCursor  int
	settingsEditing bool
	settingsInput   textinput.Model
	settingsErr     string

	// Panel overlay state
	panelActive    bool
	panelTitle     string
	panelLines     []string
	panelScroll    int
	panelMaxScroll int
}

// NewModel creates a new TUI model. cfgPath is where settings changes are
// saved; an empty path disables saving.
func NewModel(cfg *config.Config, cfgPath string, log *logger.Logger) (Model, error) {
	if log == nil {
		log = logger.Nop()
	}
	applyTheme(cfg.UI.Theme)

	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Width = 30

	m := Model{
		cfg:           cfg,
		cfgPath:       cfgPath,
		log:           log,
		width:         80,
		height:        24,
		transitions:   &transitionQueue{},
		settle:        newSettleAnimation(),
		content:       viewport.New(76, 1),
		tabs:          sheet.NewTabSelection(len(sheetTabs)),
		rootSheet:     sheet.NewModal("sheet", true),
		settings:      sheet.NewModal("settings", false),
		keys:          defaultKeyMap(),
		help:          help.New(),
		settingsItems: buildSettingsItems(),
		settingsInput: ti,
	}
	m.rootSheet.Show()

	// Sized for a default terminal until the first WindowSizeMsg arrives.
	if err := m.rebuildPanel(); err != nil {
		return Model{}, err
	}
	m.syncContent()
	return m, nil
}

// rebuildPanel constructs a controller from the config and the current
// terminal size. An existing controller's height carries over and is
// re-snapped into the new table.
func (m *Model) rebuildPanel() error {
	detents, err := m.cfg.ParsedDetents()
	if err != nil {
		return err
	}

	b := m.panelBounds()
	snaps := sheet.ResolveDetents(detents, b)
	initial := m.cfg.GetInitialDetent().Resolve(b)
	if m.panel != nil {
		initial = b.Clamp(m.panel.CurrentHeight())
	}

	panel, err := sheet.New(b.Min, b.Max, snaps, initial,
		sheet.WithCancelPolicy(m.cfg.GetCancelPolicy()),
		sheet.WithLogger(m.log.Named("sheet")),
		sheet.WithObserver(m.transitions.push),
	)
	if err != nil {
		return fmt.Errorf("build sheet: %w", err)
	}

	resnap := m.panel != nil
	m.panel = panel
	m.detents = detents
	m.gesture = gesture{}
	m.log.Debug("sheet built: bounds [%s, %s] snaps %s", formatRows(b.Min), formatRows(b.Max), snaps)

	if resnap {
		m.panel.OnDragEnded()
	}
	// A rebuilt sheet jumps straight to its height.
	for _, t := range m.transitions.drain() {
		m.settle.target = t.To
	}
	m.settle.stop()
	return nil
}

// resizePanel adapts the controller to a new terminal size.
func (m *Model) resizePanel() tea.Cmd {
	cmd := m.cancelGesture("window resized")
	b := m.panelBounds()
	if err := m.panel.Resize(b.Min, b.Max, sheet.ResolveDetents(m.detents, b)); err != nil {
		m.log.Error("resize sheet: %v", err)
	}
	m.afterCommit()
	return cmd
}

// syncContent sizes the tab viewport to the drawn sheet and refreshes its content.
func (m *Model) syncContent() {
	w := m.width - 4
	if w < 1 {
		w = 1
	}
	m.content.Width = w
	m.content.Height = contentHeight(m.displayedRows())
	m.content.SetContent(m.tabContent(w))
}

// selectTab switches the sheet to tab i.
func (m *Model) selectTab(i int) {
	if !m.tabs.Select(i) {
		return
	}
	m.content.GotoTop()
	m.status = ""
	if m.settings.Visible() && i != 0 {
		m.status = "Settings will open in " + sheetTabs[0].Title
	}
	m.log.Debug("tab selected: %d", i)
}

// requestSettings presents the settings sheet from the first tab.
func (m *Model) requestSettings() {
	m.openSettings("")
	if m.tabs.Index() != 0 {
		m.status = "Settings will open in " + sheetTabs[0].Title
	}
}

func (m *Model) saveConfig() {
	if m.cfgPath == "" {
		return
	}
	if err := m.cfg.Save(m.cfgPath); err != nil {
		m.log.Warn("save config: %v", err)
		m.status = "Failed to save settings"
	}
}

// Update handles TUI events
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	// An overlay swallows mouse input, so a drag it interrupts would never see its release.
	if next.gesture.active && next.GetState() != StateMain {
		cmd = tea.Batch(cmd, next.cancelGesture("overlay opened"))
	}
	next.syncContent()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Quit key: checked first, always active regardless of state
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.GetState() {
		case StateSettings:
			return m.settingsUpdate(msg)
		case StateLogPanel:
			return m.panelUpdate(msg)
		}
		return m.mainUpdate(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.ready = true
			m.panel = nil
			if err := m.rebuildPanel(); err != nil {
				m.log.Error("build sheet: %v", err)
			}
			m.transitions.drain()
			return m, nil
		}
		return m, m.resizePanel()

	case tea.BlurMsg:
		// The terminal lost focus mid-drag; the release will never arrive.
		return m, m.cancelGesture("focus lost")

	case settleFrameMsg:
		if msg.id == m.settle.id && m.settle.step() {
			return m, settleFrame(msg.id)
		}
	}

	return m, nil
}

// mainUpdate handles keys when no overlay is active.
func (m Model) mainUpdate(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.gesture.active {
			return m, m.cancelGesture("escape")
		}
		if m.rootSheet.Dismiss() {
			m.log.Debug("%s dismissed and presented again", m.rootSheet.Name())
			m.status = "The sheet stays presented"
		}

	case key.Matches(msg, m.keys.Raise):
		return m, m.stepSnap(1, false)

	case key.Matches(msg, m.keys.Lower):
		return m, m.stepSnap(-1, false)

	case key.Matches(msg, m.keys.NextTab):
		next := m.tabs
		next.Next()
		m.selectTab(next.Index())

	case key.Matches(msg, m.keys.PrevTab):
		prev := m.tabs
		prev.Prev()
		m.selectTab(prev.Index())

	case key.Matches(msg, m.keys.FirstTab):
		m.selectTab(0)

	case key.Matches(msg, m.keys.SecondTab):
		m.selectTab(1)

	case key.Matches(msg, m.keys.Settings):
		m.requestSettings()

	case key.Matches(msg, m.keys.Log):
		m.openLogPanel()

	case key.Matches(msg, m.keys.ScrollUp):
		m.content.LineUp(1)

	case key.Matches(msg, m.keys.ScrollDn):
		m.content.LineDown(1)
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	area := m.sheetAreaBottom()

	var top string
	switch m.GetState() {
	case StateSettings:
		top = lipgloss.Place(m.width, area, lipgloss.Center, lipgloss.Bottom, m.settingsView())
	case StateLogPanel:
		top = lipgloss.Place(m.width, area, lipgloss.Center, lipgloss.Center, m.panelView())
	default:
		top = strings.Join(m.mainLines(area), "\n")
	}

	return top + "\n" + m.tabBarView() + "\n" + HelpBarStyle.Render(m.help.View(m.keys))
}

// mainLines renders the main content with the sheet drawn over its bottom rows.
func (m *Model) mainLines(area int) []string {
	lines := make([]string, area)

	set := func(row int, s string) {
		if row >= 0 && row < area {
			lines[row] = s
		}
	}
	set(0, m.headerView())
	set(GreetingRow, GreetingStyle.Render("Hello, World!"))
	set(ButtonRow, ButtonStyle.Render(settingsButtonLabel))
	set(ButtonRow+2, HintStyle.Render("Drag the sheet's grabber with the mouse, or press ] and [."))

	if !m.rootSheet.Visible() {
		return lines
	}

	rows := m.displayedRows()
	if rows > area {
		rows = area
	}
	copy(lines[area-rows:], m.sheetLines(rows))
	return lines
}

// headerView renders the title row and the status on the right.
func (m *Model) headerView() string {
	title := HeaderStyle.Render("SnapSheet")

	status := m.status
	if m.cfg.UI.ShowDragDebug {
		st := m.panel.State()
		phase := "idle"
		if st.IsDragging {
			phase = "dragging " + st.Policy.String()
		}
		status = fmt.Sprintf("h=%s/%s %s lock=%s", formatRows(m.panel.CurrentHeight()),
			formatRows(m.panel.Bounds().Max), phase, st.LockedDirection)
		if m.status != "" {
			status = m.status + " · " + status
		}
	}
	if status == "" {
		return title
	}

	right := StatusItemStyle.Render(truncateText(status, max(m.width-lipgloss.Width(title)-2, 0)))
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(right), 1)
	return title + strings.Repeat(" ", gap) + right
}

// sheetLines renders the sheet at the given height: grabber, title, body.
func (m *Model) sheetLines(rows int) []string {
	if rows <= 0 {
		return nil
	}
	width := max(m.width, 1)

	grabber := GrabberStyle
	if m.gesture.active {
		grabber = GrabberActiveStyle
	}
	lines := []string{grabber.Width(width).Align(lipgloss.Center).Render("━━━━━━")}
	if rows == 1 {
		return lines
	}

	title := sheetTabs[m.tabs.Index()].Title
	lines = append(lines, SheetTitleStyle.Width(width).Render(title))

	body := strings.Split(m.content.View(), "\n")
	for i := 0; i < contentHeight(rows); i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		lines = append(lines, SheetStyle.Width(width).Render("  "+line))
	}
	return lines
}

// quitKeyFilter is a program-level filter that catches quit keys
// even if the model's Update somehow doesn't process them.
// It counts consecutive Ctrl+C presses and force-exits on the third.
func quitKeyFilter() func(tea.Model, tea.Msg) tea.Msg {
	ctrlCCount := 0
	return func(m tea.Model, msg tea.Msg) tea.Msg {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.Type {
			case tea.KeyCtrlC:
				ctrlCCount++
				if ctrlCCount >= 3 {
					fmt.Print("\033[?1000l\033[?1002l\033[?1003l\033[?1006l")
					fmt.Print("\033[?25h\033[?1049l")
					fmt.Fprintln(os.Stderr, "\nForce quit.")
					os.Exit(1)
				}
			default:
				ctrlCCount = 0
			}
		}
		return msg
	}
}

// Run starts the TUI; cancelling ctx stops it.
func Run(ctx context.Context, cfg *config.Config, cfgPath string, log *logger.Logger) error {
	model, err := NewModel(cfg, cfgPath, log)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithFilter(quitKeyFilter()),
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	return err
}
