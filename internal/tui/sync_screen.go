// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/crypto"
	"github.com/onda-planner/onda-sync/internal/service"
	"github.com/onda-planner/onda-sync/models"
)

// DefaultStatusInterval is how often the status block is refreshed.
const DefaultStatusInterval = 2 * time.Second

const (
	msgEnterURLAndKey    = "Please enter server URL and secret key"
	msgEnableSyncFirst   = "Enable sync and save the configuration first"
	msgConfirmDelete     = "Delete all data stored on the server for this key? (y/n)"
	msgKeyGenerated      = "New secret key generated and copied to the clipboard"
	msgKeyNotCopied      = "New secret key generated (clipboard unavailable)"
	msgTestingConnection = "Testing connection..."
	msgSyncing           = "Syncing..."
	msgSaving            = "Saving..."
	msgDeleting          = "Deleting server data..."
)

type syncField int

const (
	fieldEnabled syncField = iota
	fieldServerURL
	fieldSecretKey
	fieldAutoSync
	fieldInterval
	fieldCount
)

type syncScreenModel struct {
	ctx            context.Context
	sync           service.SyncService
	statusInterval time.Duration
	now            func() time.Time
	copyToClip     func(string) error

	enabled   bool
	autoSync  bool
	serverURL textinput.Model
	secretKey textinput.Model
	interval  textinput.Model
	focus     syncField

	spinner       spinner.Model
	busy          string
	status        models.SyncStatus
	notice        string
	noticeIsError bool
	confirmDelete bool
}

func newSyncScreenModel(ctx context.Context, syncService service.SyncService, statusInterval time.Duration) syncScreenModel {
	if statusInterval <= 0 {
		statusInterval = DefaultStatusInterval
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := syncScreenModel{
		ctx:            ctx,
		sync:           syncService,
		statusInterval: statusInterval,
		now:            time.Now,
		copyToClip:     clipboard.WriteAll,
		autoSync:       true,
		serverURL:      newInput(models.DefaultSyncServerURL),
		secretKey:      newInput("at least 8 characters"),
		interval:       newInput("minutes"),
		spinner:        s,
	}
	m.secretKey.EchoMode = textinput.EchoPassword
	m.secretKey.EchoCharacter = '•'

	m.loadConfig()
	m.status = syncService.GetStatus()
	m.focusField(fieldEnabled)

	return m
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 512
	in.Width = 48
	return in
}

// loadConfig fills the form from the stored config, keeping defaults for
// missing values.
func (m *syncScreenModel) loadConfig() {
	cfg := m.sync.GetSyncConfig(m.ctx)

	serverURL := models.DefaultSyncServerURL
	interval := time.Duration(models.DefaultSyncInterval) * time.Millisecond
	if cfg != nil {
		m.enabled = cfg.Enabled
		m.autoSync = cfg.AutoSync
		if cfg.ServerURL != "" {
			serverURL = cfg.ServerURL
		}
		m.secretKey.SetValue(cfg.SecretKey)
		interval = cfg.Interval()
	}

	m.serverURL.SetValue(serverURL)
	m.interval.SetValue(strconv.FormatInt(int64(interval/time.Minute), 10))
}

func (m syncScreenModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tickStatus())
}

func (m syncScreenModel) tickStatus() tea.Cmd {
	return tea.Tick(m.statusInterval, func(time.Time) tea.Msg { return statusTickMsg{} })
}

func (m syncScreenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusTickMsg:
		m.status = m.sync.GetStatus()
		return m, m.tickStatus()

	case spinner.TickMsg:
		if m.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case saveDoneMsg:
		m.busy = ""
		m.status = m.sync.GetStatus()
		if !msg.result.OK() {
			m.setError(msg.result.Message)
			return m, nil
		}
		m.setNotice(app.MsgSyncConfigSaved)
		return m, nil

	case testDoneMsg:
		m.busy = ""
		if msg.result.Status != models.StatusSuccess {
			m.setError(msg.result.Message)
			return m, nil
		}
		m.setNotice(msg.result.Message)
		return m, nil

	case syncDoneMsg:
		m.busy = ""
		m.status = m.sync.GetStatus()
		switch msg.result.Status {
		case models.StatusSuccess:
			m.setNotice(fmt.Sprintf("%s (version %d)", app.MsgSyncCompleted, msg.result.Version))
		case models.StatusSkipped:
			m.setNotice(msg.result.Message)
		default:
			m.setError(app.MsgSyncFailed + ": " + msg.result.Message)
		}
		return m, nil

	case deleteDoneMsg:
		m.busy = ""
		m.status = m.sync.GetStatus()
		if !msg.result.OK() {
			m.setError(msg.result.Message)
			return m, nil
		}
		m.setNotice(app.MsgServerDataDeleted)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m syncScreenModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDelete {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmDelete = false
			return m.startBusy(msgDeleting, m.cmdDelete())
		case key.Matches(msg, keys.no):
			m.confirmDelete = false
			m.notice = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.next):
		m.focusField((m.focus + 1) % fieldCount)
		return m, nil
	case key.Matches(msg, keys.prev):
		m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case key.Matches(msg, keys.reveal):
		m.toggleSecretVisibility()
		return m, nil
	case key.Matches(msg, keys.generate):
		m.generateSecretKey()
		return m, nil
	}

	if m.busy == "" {
		switch {
		case key.Matches(msg, keys.save):
			return m.save()
		case key.Matches(msg, keys.test):
			return m.testConnection()
		case key.Matches(msg, keys.sync):
			return m.syncNow()
		case key.Matches(msg, keys.delete):
			return m.askDelete()
		}
	}

	if m.focus == fieldEnabled || m.focus == fieldAutoSync {
		if key.Matches(msg, keys.toggle) {
			if m.focus == fieldEnabled {
				m.enabled = !m.enabled
			} else {
				m.autoSync = !m.autoSync
			}
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m syncScreenModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldServerURL:
		m.serverURL, cmd = m.serverURL.Update(msg)
	case fieldSecretKey:
		m.secretKey, cmd = m.secretKey.Update(msg)
	case fieldInterval:
		m.interval, cmd = m.interval.Update(msg)
	}
	return m, cmd
}

func (m *syncScreenModel) focusField(f syncField) {
	m.focus = f
	m.serverURL.Blur()
	m.secretKey.Blur()
	m.interval.Blur()

	switch f {
	case fieldServerURL:
		m.serverURL.Focus()
	case fieldSecretKey:
		m.secretKey.Focus()
	case fieldInterval:
		m.interval.Focus()
	}
}

func (m *syncScreenModel) toggleSecretVisibility() {
	if m.secretKey.EchoMode == textinput.EchoPassword {
		m.secretKey.EchoMode = textinput.EchoNormal
		return
	}
	m.secretKey.EchoMode = textinput.EchoPassword
}

func (m *syncScreenModel) generateSecretKey() {
	secret, err := crypto.GenerateSecretKey()
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.secretKey.SetValue(secret)

	if err := m.copyToClip(secret); err != nil {
		m.setNotice(msgKeyNotCopied)
		return
	}
	m.setNotice(msgKeyGenerated)
}

func (m *syncScreenModel) setNotice(s string) {
	m.notice = s
	m.noticeIsError = false
}

func (m *syncScreenModel) setError(s string) {
	m.notice = s
	m.noticeIsError = true
}

func (m syncScreenModel) startBusy(label string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy = label
	m.notice = ""
	return m, tea.Batch(cmd, m.spinner.Tick)
}

// ── actions ──────────────────────────────────────────────────────────────────

// formPatch turns the form into a config patch. Only the interval can be
// malformed.
func (m syncScreenModel) formPatch() (models.SyncConfigPatch, error) {
	minutes, err := strconv.ParseInt(strings.TrimSpace(m.interval.Value()), 10, 64)
	if err != nil || minutes <= 0 {
		return models.SyncConfigPatch{}, errInvalidInterval
	}

	enabled, autoSync := m.enabled, m.autoSync
	serverURL := strings.TrimSpace(m.serverURL.Value())
	secretKey := strings.TrimSpace(m.secretKey.Value())
	interval := (time.Duration(minutes) * time.Minute).Milliseconds()

	return models.SyncConfigPatch{
		Enabled:      &enabled,
		ServerURL:    &serverURL,
		SecretKey:    &secretKey,
		AutoSync:     &autoSync,
		SyncInterval: &interval,
	}, nil
}

func (m syncScreenModel) save() (tea.Model, tea.Cmd) {
	patch, err := m.formPatch()
	if err != nil {
		m.setError(err.Error())
		return m, nil
	}
	if *patch.Enabled && len(*patch.SecretKey) < models.MinSecretKeyLength {
		m.setError(app.MsgInvalidSecretKeyShort)
		return m, nil
	}

	ctx, syncService := m.ctx, m.sync
	return m.startBusy(msgSaving, func() tea.Msg {
		res := syncService.SaveSyncConfig(ctx, patch)
		if !res.OK() {
			return saveDoneMsg{result: res}
		}

		done := saveDoneMsg{result: res, enabled: *patch.Enabled}
		if *patch.Enabled {
			done.activated = syncService.Initialize(ctx)
		} else {
			syncService.StopAutoSync()
		}
		return done
	})
}

func (m syncScreenModel) testConnection() (tea.Model, tea.Cmd) {
	serverURL := strings.TrimSpace(m.serverURL.Value())
	secretKey := strings.TrimSpace(m.secretKey.Value())
	if serverURL == "" || secretKey == "" {
		m.setError(msgEnterURLAndKey)
		return m, nil
	}

	ctx, syncService := m.ctx, m.sync
	return m.startBusy(msgTestingConnection, func() tea.Msg {
		return testDoneMsg{result: syncService.TestConnection(ctx, serverURL, secretKey)}
	})
}

func (m syncScreenModel) syncNow() (tea.Model, tea.Cmd) {
	if !m.status.Enabled {
		m.setError(msgEnableSyncFirst)
		return m, nil
	}

	ctx, syncService := m.ctx, m.sync
	return m.startBusy(msgSyncing, func() tea.Msg {
		return syncDoneMsg{result: syncService.Sync(ctx, true)}
	})
}

func (m syncScreenModel) askDelete() (tea.Model, tea.Cmd) {
	if !m.status.Enabled {
		m.setError(msgEnableSyncFirst)
		return m, nil
	}
	m.confirmDelete = true
	m.notice = msgConfirmDelete
	m.noticeIsError = false
	return m, nil
}

func (m syncScreenModel) cmdDelete() tea.Cmd {
	ctx, syncService := m.ctx, m.sync
	return func() tea.Msg {
		return deleteDoneMsg{result: syncService.DeleteServerData(ctx)}
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m syncScreenModel) View() string {
	var b strings.Builder

	b.WriteString(m.fieldLine(fieldEnabled, "Sync enabled", checkbox(m.enabled)))
	b.WriteString(m.fieldLine(fieldServerURL, "Server URL", m.serverURL.View()))
	b.WriteString(m.fieldLine(fieldSecretKey, "Secret key", m.secretKey.View()))
	b.WriteString(helpStyle.Render("  Use the same key on all devices. Keep it secret!"))
	b.WriteString("\n")
	b.WriteString(m.fieldLine(fieldAutoSync, "Auto sync", checkbox(m.autoSync)))
	b.WriteString(m.fieldLine(fieldInterval, "Every (min)", m.interval.View()))

	b.WriteString("\n")
	b.WriteString(m.statusBlock())

	b.WriteString("\n")
	switch {
	case m.busy != "":
		b.WriteString(m.spinner.View() + " " + m.busy)
	case m.notice != "" && m.noticeIsError:
		b.WriteString(errorStyle.Render(m.notice))
	case m.notice != "":
		b.WriteString(successStyle.Render(m.notice))
	}

	return renderPage("CLOUD SYNC", b.String(), helpLine)
}

func (m syncScreenModel) fieldLine(f syncField, label, value string) string {
	cursor := "  "
	style := labelStyle
	if m.focus == f {
		cursor = "> "
		style = focusedStyle.Width(labelStyle.GetWidth())
	}
	return cursor + style.Render(label) + value + "\n"
}

func (m syncScreenModel) statusBlock() string {
	if !m.status.Enabled {
		return helpStyle.Render("Sync is off.") + "\n"
	}

	var b strings.Builder
	state := "idle"
	if m.status.Syncing {
		state = "syncing"
	}
	auto := "inactive"
	if m.status.AutoSyncActive {
		auto = "active"
	}
	pending := "none"
	if m.status.HasLocalChanges {
		pending = "waiting to upload"
	}

	fmt.Fprintf(&b, "Status:        %s\n", state)
	fmt.Fprintf(&b, "Version:       %d\n", m.status.Version)
	fmt.Fprintf(&b, "Last sync:     %s\n", relativeTime(m.status.LastSync, m.now()))
	fmt.Fprintf(&b, "Auto sync:     %s\n", auto)
	fmt.Fprintf(&b, "Local changes: %s\n", pending)
	return b.String()
}
