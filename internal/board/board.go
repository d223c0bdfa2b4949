// Package board implements the interactive terminal board for a task store.
//
// The board renders the presentation sequence, cycles and sets statuses from
// the keyboard, reorders tasks by keyboard grab or mouse long-press drag and
// celebrates START!/DONE! milestones with a timed banner.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/ktra/gesture"
	internalstrings "github.com/amonks/ktra/internal/strings"
	"github.com/amonks/ktra/internal/ui"
	"github.com/amonks/ktra/task"
)

// DefaultMilestone is how long a milestone banner stays on screen.
const DefaultMilestone = 900 * time.Millisecond

// listTop is the screen row of the first task; the header and help bar sit
// above it.
const listTop = 2

// Options configures the board.
type Options struct {
	// LongPress is the hold time before a mouse press starts a drag.
	// Defaults to gesture.DefaultLongPress.
	LongPress time.Duration

	// Milestone is how long the START!/DONE! banner is shown.
	// Defaults to DefaultMilestone.
	Milestone time.Duration

	// Now overrides the clock used for gestures and the week panel.
	// Defaults to the store's clock.
	Now func() time.Time
}

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type modalKind int

const (
	modalNone modalKind = iota
	modalDelete
)

var statusKeys = map[string]task.Status{
	"1": task.StatusUnstarted,
	"2": task.StatusDoing,
	"3": task.StatusDone,
}

type model struct {
	ctx         context.Context
	store       *task.Store
	now         func() time.Time
	width       int
	height      int
	list        list.Model
	tracker     *gesture.Tracker
	milestone   time.Duration
	banner      *task.Milestone
	bannerSeq   int
	stale       bool
	showWeek    bool
	modal       confirmModal
	status      string
	statusLevel statusLevel
	selectedID  string
}

type confirmModal struct {
	kind        modalKind
	taskID      string
	message     string
	confirmText string
	cancelText  string
	selected    int
}

type longPressMsg struct {
	id string
}

type bannerDoneMsg struct {
	seq int
}

// Run starts the board and blocks until the user quits or ctx is done.
// The store is only touched from the program's update loop.
func Run(ctx context.Context, store *task.Store, opts Options) error {
	if store == nil {
		return fmt.Errorf("task store is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(
		newModel(ctx, store, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func newModel(ctx context.Context, store *task.Store, opts Options) model {
	tasks := list.New(nil, taskDelegate{}, 0, 0)
	tasks.SetShowTitle(false)
	tasks.SetShowStatusBar(false)
	tasks.SetFilteringEnabled(false)
	tasks.SetShowHelp(false)
	tasks.SetShowPagination(false)

	longPress := opts.LongPress
	if longPress <= 0 {
		longPress = gesture.DefaultLongPress
	}
	milestone := opts.Milestone
	if milestone <= 0 {
		milestone = DefaultMilestone
	}
	now := opts.Now
	if now == nil {
		now = store.Now
	}

	m := model{
		ctx:       ctx,
		store:     store,
		now:       now,
		list:      tasks,
		tracker:   gesture.NewTracker(longPress),
		milestone: milestone,
		modal:     confirmModal{kind: modalNone},
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case bannerDoneMsg:
		return m.handleBannerDone(msg), nil
	case longPressMsg:
		return m.handleLongPress(msg), nil
	}

	if m.modal.kind != modalNone {
		return m.updateModal(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading board..."
	}
	body := m.renderBody()
	if m.banner != nil {
		body = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, ui.MilestoneBanner(*m.banner, m.width))
	}
	view := strings.Join([]string{m.renderHeader(), m.renderHelpLine(), body, m.renderStatusLine()}, "\n")
	if m.modal.kind != modalNone {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
	}
	return view
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	}
	if m.banner != nil {
		return m, nil
	}
	if m.showWeek {
		switch key {
		case "w", "esc":
			m.showWeek = false
		}
		return m, nil
	}
	if m.tracker.State() == gesture.Dragging {
		return m.handleGrabKey(key)
	}

	switch key {
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "home":
		m.moveSelection(-len(m.list.Items()))
	case "end":
		m.moveSelection(len(m.list.Items()))
	case " ", "enter":
		return m.cycleSelected()
	case "1", "2", "3":
		return m.setSelectedStatus(statusKeys[key])
	case "m":
		return m.grabSelected(), nil
	case "d":
		return m.promptDelete(), nil
	case "w":
		m.tracker.Cancel()
		m.showWeek = true
	case "esc":
		m.setStatus("", statusNone)
	}
	return m, nil
}

func (m model) handleGrabKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "enter", " ", "m":
		drop, ok := m.tracker.Release(m.selectedID)
		m.syncDelegate()
		if !ok {
			m.setStatus("Move cancelled", statusInfo)
			return m, nil
		}
		return m.applyDrop(drop), nil
	case "esc":
		m.tracker.Cancel()
		m.syncDelegate()
		m.setStatus("Move cancelled", statusInfo)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.banner != nil || m.showWeek {
		return m, nil
	}
	id, index, onRow := m.rowAt(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onRow {
			return m, nil
		}
		m.list.Select(index)
		m.selectedID = id
		m.tracker.Press(id, gesture.SourceTouch, m.now())
		m.syncDelegate()
		return m, tea.Tick(m.tracker.Threshold(), func(time.Time) tea.Msg {
			return longPressMsg{id: id}
		})
	case tea.MouseActionMotion:
		if m.tracker.State() != gesture.Dragging || !onRow {
			return m, nil
		}
		m.tracker.Hover(id)
		m.syncDelegate()
	case tea.MouseActionRelease:
		drop, ok := m.tracker.Release(id)
		m.syncDelegate()
		if ok {
			return m.applyDrop(drop), nil
		}
	}
	return m, nil
}

func (m model) handleLongPress(msg longPressMsg) model {
	if m.tracker.State() != gesture.Armed || m.tracker.DraggedID() != msg.id {
		return m
	}
	if m.tracker.Tick(m.now()) {
		m.syncDelegate()
		m.setStatus("Dragging: release over a task to drop it there", statusInfo)
	}
	return m
}

func (m model) handleBannerDone(msg bannerDoneMsg) model {
	if m.banner == nil || msg.seq != m.bannerSeq {
		return m
	}
	m.banner = nil
	if m.stale {
		m.stale = false
		m.refresh()
	}
	return m
}

func (m model) cycleSelected() (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		return m, nil
	}
	updated, milestone, err := m.store.Cycle(m.ctx, item.task.ID)
	if err != nil && !errors.Is(err, task.ErrPersistence) {
		m.setStatus(fmt.Sprintf("Cycle failed: %v", err), statusError)
		return m, nil
	}
	if err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
	} else {
		m.setStatus(fmt.Sprintf("%s is now %s", updated.Title, updated.Status), statusInfo)
	}
	if milestone != nil {
		return m.showBanner(*milestone)
	}
	m.refresh()
	return m, nil
}

func (m model) setSelectedStatus(status task.Status) (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		return m, nil
	}
	updated, err := m.store.SetStatus(m.ctx, item.task.ID, status)
	switch {
	case errors.Is(err, task.ErrPersistence):
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
	case err != nil:
		m.setStatus(fmt.Sprintf("Status change failed: %v", err), statusError)
		return m, nil
	default:
		m.setStatus(fmt.Sprintf("%s is now %s", updated.Title, updated.Status), statusInfo)
	}
	m.refresh()
	return m, nil
}

func (m model) showBanner(milestone task.Milestone) (tea.Model, tea.Cmd) {
	m.banner = &milestone
	m.bannerSeq++
	m.stale = true
	seq := m.bannerSeq
	return m, tea.Tick(m.milestone, func(time.Time) tea.Msg {
		return bannerDoneMsg{seq: seq}
	})
}

func (m model) grabSelected() model {
	item, ok := m.currentItem()
	if !ok {
		return m
	}
	m.tracker.Press(item.task.ID, gesture.SourcePointer, m.now())
	m.syncDelegate()
	m.setStatus("Moving: pick a target and press enter", statusInfo)
	return m
}

func (m model) applyDrop(drop gesture.Drop) model {
	_, err := m.store.Move(m.ctx, drop.DraggedID, drop.TargetID)
	switch {
	case errors.Is(err, task.ErrCrossGroupMove):
		m.setStatus("Can't move a task between active and done", statusError)
		return m
	case errors.Is(err, task.ErrPersistence):
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
	case err != nil:
		m.setStatus(fmt.Sprintf("Move failed: %v", err), statusError)
		return m
	default:
		m.setStatus("Moved", statusInfo)
	}
	m.selectedID = drop.DraggedID
	m.refresh()
	return m
}

func (m model) promptDelete() model {
	item, ok := m.currentItem()
	if !ok {
		return m
	}
	m.tracker.Cancel()
	m.modal = confirmModal{
		kind:        modalDelete,
		taskID:      item.task.ID,
		message:     fmt.Sprintf("Delete %q?", item.task.Title),
		confirmText: "Delete",
		cancelText:  "Cancel",
		selected:    1,
	}
	return m
}

func (m model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "left", "right", "tab", "shift+tab", "backtab", "h", "l":
		if m.modal.selected == 0 {
			m.modal.selected = 1
		} else {
			m.modal.selected = 0
		}
		return m, nil
	case "enter":
		return m.resolveModal(m.modal.selected == 0)
	case "y":
		return m.resolveModal(true)
	case "n", "esc", "q":
		return m.resolveModal(false)
	}
	return m, nil
}

func (m model) resolveModal(confirm bool) (tea.Model, tea.Cmd) {
	modal := m.modal
	m.modal = confirmModal{kind: modalNone}
	if !confirm || modal.kind != modalDelete {
		return m, nil
	}

	index := m.list.Index()
	err := m.store.Delete(m.ctx, modal.taskID)
	switch {
	case errors.Is(err, task.ErrPersistence):
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
	case err != nil:
		m.setStatus(fmt.Sprintf("Delete failed: %v", err), statusError)
		return m, nil
	default:
		m.setStatus("Deleted", statusInfo)
	}
	m.refresh()
	if count := len(m.list.Items()); count > 0 {
		if index >= count {
			index = count - 1
		}
		m.list.Select(index)
		m.updateSelection()
	}
	return m, nil
}

func (m model) modalView() string {
	options := []string{m.modal.confirmText, m.modal.cancelText}
	buttons := make([]string, 0, len(options))
	for i, option := range options {
		style := valueMuted
		if i == m.modal.selected {
			style = selectedButton
		}
		buttons = append(buttons, style.Render("["+option+"]"))
	}
	content := strings.Join([]string{m.modal.message, "", strings.Join(buttons, " ")}, "\n")
	return modalStyle.Render(content)
}

// refresh reloads rows from the store, keeping the selection on the same
// task when it still exists.
func (m *model) refresh() {
	ordered := m.store.Ordered()
	items := make([]list.Item, 0, len(ordered))
	for _, item := range ordered {
		items = append(items, taskItem{task: item})
	}
	m.list.SetItems(items)
	m.selectByID(m.selectedID)
	if count := len(items); count > 0 && m.list.Index() >= count {
		m.list.Select(count - 1)
	}
	m.updateSelection()
}

func (m *model) selectByID(id string) {
	if id == "" {
		return
	}
	for i, item := range m.list.Items() {
		if current, ok := item.(taskItem); ok && current.task.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m *model) updateSelection() {
	item, ok := m.currentItem()
	if !ok {
		m.selectedID = ""
		return
	}
	m.selectedID = item.task.ID
}

func (m *model) moveSelection(delta int) {
	items := m.list.Items()
	if len(items) == 0 {
		return
	}
	next := m.list.Index() + delta
	if next < 0 {
		next = 0
	}
	if next >= len(items) {
		next = len(items) - 1
	}
	m.list.Select(next)
	m.updateSelection()
	if m.tracker.State() == gesture.Dragging {
		m.tracker.Hover(m.selectedID)
		m.syncDelegate()
	}
}

func (m *model) syncDelegate() {
	delegate := taskDelegate{}
	if m.tracker.State() == gesture.Dragging {
		delegate.draggedID = m.tracker.DraggedID()
		delegate.hoverID = m.tracker.HoverID()
	}
	m.list.SetDelegate(delegate)
}

func (m model) currentItem() (taskItem, bool) {
	item := m.list.SelectedItem()
	if item == nil {
		return taskItem{}, false
	}
	current, ok := item.(taskItem)
	return current, ok
}

// rowAt maps a screen row to the task drawn there.
func (m model) rowAt(y int) (string, int, bool) {
	row := y - listTop
	perPage := m.list.Paginator.PerPage
	if row < 0 || row >= perPage || row >= m.bodyHeight() {
		return "", 0, false
	}
	index := m.list.Paginator.Page*perPage + row
	items := m.list.Items()
	if index < 0 || index >= len(items) {
		return "", 0, false
	}
	item, ok := items[index].(taskItem)
	if !ok {
		return "", 0, false
	}
	return item.task.ID, index, true
}

func (m *model) resize() {
	width := m.width
	if width < 1 {
		width = 1
	}
	m.list.SetSize(width, m.bodyHeight())
}

func (m model) bodyHeight() int {
	height := m.height - 3
	if height < 1 {
		height = 1
	}
	return height
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m model) renderHeader() string {
	active, done := 0, 0
	for _, item := range m.list.Items() {
		if current, ok := item.(taskItem); ok && current.task.IsDone() {
			done++
		} else {
			active++
		}
	}
	title := "ktra"
	counts := fmt.Sprintf("%d active | %d done", active, done)
	spacerWidth := m.width - lipgloss.Width(title) - lipgloss.Width(counts) - 2
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	return headerStyle.Width(m.width).Render(" " + title + strings.Repeat(" ", spacerWidth) + counts + " ")
}

func (m model) renderHelpLine() string {
	return helpBarStyle.Width(m.width).Render(truncateText(m.helpSummary(), m.width))
}

func (m model) helpSummary() string {
	switch {
	case m.showWeek:
		return "Keys: w back | q quit"
	case m.tracker.State() == gesture.Dragging:
		return "Moving: up/down pick target | enter drop | esc cancel"
	default:
		return "Keys: space cycle | 1/2/3 set status | m move | d delete | w week | q quit"
	}
}

func (m model) renderStatusLine() string {
	text := m.status
	if internalstrings.IsBlank(text) {
		return ""
	}
	style := valueMuted
	if m.statusLevel == statusError {
		style = statusErrorStyle
	} else if m.statusLevel == statusInfo {
		style = statusSuccessStyle
	}
	return style.Render(truncateText(text, m.width))
}

func (m model) renderBody() string {
	height := m.bodyHeight()
	box := lipgloss.NewStyle().Height(height).MaxHeight(height)
	if m.showWeek {
		return box.Render(renderWeek(m.store.Week(m.now()), m.width))
	}
	if len(m.list.Items()) == 0 {
		return box.Render(valueMuted.Render("No tasks yet. Add one with: ktra add <title>"))
	}
	return box.Render(m.list.View())
}
