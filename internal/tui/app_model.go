package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-zone-keeper/internal/service"
	"github.com/MKhiriev/go-zone-keeper/models"
)

const statusTimeout = 4 * time.Second

// clipboardIO abstracts the system clipboard so the model can be driven in
// tests.
type clipboardIO struct {
	read  func() (string, error)
	write func(string) error
}

type appModel struct {
	ctx         context.Context
	services    *service.ClientServices
	buildInfo   models.AppBuildInfo
	containerID string
	clipboard   clipboardIO

	states <-chan models.SyncState
	state  models.SyncState

	spinner spinner.Model
	cursor  int

	showForm bool
	form     contactFormModel

	showInfo     bool
	showError    bool
	errorOverlay errorOverlayModel
	status       string
}

func newAppModel(ctx context.Context, services *service.ClientServices, states <-chan models.SyncState,
	buildInfo models.AppBuildInfo, containerID string, clip clipboardIO) appModel {
	return appModel{
		ctx:         ctx,
		services:    services,
		buildInfo:   buildInfo,
		containerID: containerID,
		clipboard:   clip,
		states:      states,
		state:       services.SyncService.State(),
		spinner:     newSpinner(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForState(m.states))
}

// waitForState blocks on the next published state. A closed channel ends the
// subscription quietly.
func waitForState(states <-chan models.SyncState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return nil
		}
		return stateMsg{state: state}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = msg.state
		if entries := flattenGroups(m.state); m.cursor >= len(entries) {
			m.cursor = max(len(entries)-1, 0)
		}
		return m, waitForState(m.states)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		if msg.err != nil {
			return m.withStatus("Refresh failed: " + humanizeError(msg.err))
		}
		return m, nil

	case contactAddedMsg:
		m.form.submitting = false
		if msg.err != nil {
			return m.withError(msg.err)
		}
		m.showForm = false
		next, cmd := m.withStatus(fmt.Sprintf("Added %s", msg.contact.Name))
		return next, tea.Batch(cmd, m.cmdRefresh())

	case shareReadyMsg:
		if msg.err != nil {
			return m.withError(msg.err)
		}
		url := msg.metadata.URL()
		if err := m.clipboard.write(url); err != nil {
			return m.withStatus("Share URL: " + url)
		}
		next, cmd := m.withStatus(fmt.Sprintf("Share URL for %s copied to clipboard", msg.group))
		return next, tea.Batch(cmd, m.cmdRefresh())

	case shareAcceptedMsg:
		if msg.err != nil {
			return m.withError(msg.err)
		}
		next, cmd := m.withStatus(fmt.Sprintf("Joined %s from %s", msg.zone.ID.ZoneName, msg.zone.ID.OwnerName))
		return next, tea.Batch(cmd, m.cmdRefresh())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.showForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.showError = false
		}
		return m, nil
	}
	if m.showInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}
	if m.showForm {
		return m.updateForm(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(flattenGroups(m.state))-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.add):
		group := ""
		if entry, ok := m.selected(); ok && entry.scope == models.ScopePrivate {
			group = entry.group.Name()
		}
		m.form = newContactFormModel(group)
		m.showForm = true
	case key.Matches(msg, keys.share):
		entry, ok := m.selected()
		if !ok {
			return m.withError(errNoGroupSelected)
		}
		if entry.scope != models.ScopePrivate {
			return m.withError(errSharedGroupShared)
		}
		return m, m.cmdShare(entry.group)
	case key.Matches(msg, keys.accept):
		return m, m.cmdAcceptFromClipboard()
	case key.Matches(msg, keys.info):
		m.showInfo = true
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.showForm = false
		return m, nil
	case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
		m.form = m.form.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
		m.form = m.form.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		m.form.submitting = true
		name, phone, group := m.form.values()
		return m, m.cmdAddContact(name, phone, group)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) selected() (groupEntry, bool) {
	entries := flattenGroups(m.state)
	if m.state.Status != models.SyncLoaded || m.cursor < 0 || m.cursor >= len(entries) {
		return groupEntry{}, false
	}
	return entries[m.cursor], true
}

func (m appModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m appModel) withError(err error) (tea.Model, tea.Cmd) {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: humanizeError(err)}
	return m, nil
}

func (m appModel) cmdRefresh() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: m.services.SyncService.Refresh(m.ctx)}
	}
}

func (m appModel) cmdAddContact(name, phone, group string) tea.Cmd {
	return func() tea.Msg {
		contact, err := m.services.ContactService.AddContact(m.ctx, name, phone, group)
		return contactAddedMsg{contact: contact, err: err}
	}
}

func (m appModel) cmdShare(group models.RecordGroup) tea.Cmd {
	return func() tea.Msg {
		share, metadata, err := m.services.ShareService.FetchOrCreateShare(m.ctx, group)
		return shareReadyMsg{group: group.Name(), share: share, metadata: metadata, err: err}
	}
}

func (m appModel) cmdAcceptFromClipboard() tea.Cmd {
	return func() tea.Msg {
		raw, err := m.clipboard.read()
		if err != nil {
			return shareAcceptedMsg{err: fmt.Errorf("read clipboard: %w", err)}
		}
		metadata, err := models.ParseShareURL(strings.TrimSpace(raw))
		if err != nil {
			return shareAcceptedMsg{err: err}
		}
		zone, err := m.services.ShareService.AcceptShare(m.ctx, metadata)
		return shareAcceptedMsg{zone: zone, err: err}
	}
}

func (m appModel) View() string {
	var page string
	switch {
	case m.showInfo:
		page = renderBuildInfoWindow(m.buildInfo, m.containerID)
	case m.showForm:
		page = m.form.View()
	default:
		page = m.listView()
	}
	if m.showError {
		page += "\n\n" + m.errorOverlay.View()
	}
	return appStyle.Render(page)
}

func (m appModel) listView() string {
	var body string
	switch m.state.Status {
	case models.SyncLoading:
		body = renderLoading(m.spinner)
	case models.SyncFailed:
		body = errorStyle.Render("Sync failed: " + humanizeError(m.state.Err))
	default:
		body = renderGroups(m.state, m.cursor)
	}
	if m.status != "" {
		body += "\n\n" + m.status
	}

	return renderPage(titleStyle.Render("CONTACTS"), body,
		"r: refresh  n: new contact  s: share group  a: accept share  v: about  q: quit")
}
