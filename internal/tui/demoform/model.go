// ============================================================================
// euler - Werkbank fuer komplexe Zahlen
// ============================================================================
//
// Package:     demoform
// Description: Bubble Tea form that collects two complex numbers and shows
//              the session transcript
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package demoform

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	mdwi18n "github.com/msto63/euler/foundation/core/i18n"
	mdwlog "github.com/msto63/euler/foundation/core/log"
	mdwmathx "github.com/msto63/euler/foundation/utils/mathx"
	mdwstringx "github.com/msto63/euler/foundation/utils/stringx"
	"github.com/msto63/euler/internal/demo"
)

// ViewMode represents the current view
type ViewMode int

const (
	ViewForm ViewMode = iota
	ViewResult
)

// Field indexes, in input order
const (
	FieldRealA = iota
	FieldImagA
	FieldRealB
	FieldImagB
	fieldCount
)

var fieldLabelKeys = [fieldCount]string{
	"form.real_first",
	"form.imag_first",
	"form.real_second",
	"form.imag_second",
}

// Config holds the configuration for the form
type Config struct {
	Catalog *mdwi18n.Manager // nil loads the embedded catalogs in demo.DefaultLocale
	Format  mdwmathx.NumberFormat
	Logger  *mdwlog.Logger
}

// Model is the main Bubble Tea model
type Model struct {
	// Dimensions
	width, height int

	// State
	viewMode ViewMode
	focus    int
	invalid  [fieldCount]bool
	err      error

	// Components
	inputs   [fieldCount]textinput.Model
	viewport viewport.Model

	// Output
	transcript string

	// Config
	catalog *mdwi18n.Manager
	format  mdwmathx.NumberFormat
	logger  *mdwlog.Logger
}

// NewModel creates a new form model with the first field focused
func NewModel(cfg Config) (Model, error) {
	catalog := cfg.Catalog
	if catalog == nil {
		var err error
		if catalog, err = demo.NewCatalog(""); err != nil {
			return Model{}, err
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}

	m := Model{
		width:    80,
		height:   24,
		viewport: viewport.New(76, 16),
		catalog:  catalog,
		format:   cfg.Format,
		logger:   logger.WithName("demoform"),
	}

	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = "0"
		input.CharLimit = 32
		input.Width = 24
		m.inputs[i] = input
	}
	m.inputs[FieldRealA].Focus()

	return m, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keys
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// View-specific handling
		switch m.viewMode {
		case ViewForm:
			return m.updateFormView(msg)
		case ViewResult:
			return m.updateResultView(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-8, 5)
	}

	return m, nil
}

// updateFormView handles form view updates
func (m Model) updateFormView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return m.setFocus((m.focus + 1) % fieldCount), nil

	case "shift+tab", "up":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil

	case "enter":
		if m.focus < fieldCount-1 {
			return m.setFocus(m.focus + 1), nil
		}
		return m.submit(), nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// updateResultView handles result view updates
func (m Model) updateResultView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.viewMode = ViewForm
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) setFocus(field int) Model {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = field
	m.inputs[field].Focus()
	return m
}

// submit validates every field and renders the transcript on success
func (m Model) submit() Model {
	var values [fieldCount]float64
	valid := true

	for i, input := range m.inputs {
		value, err := strconv.ParseFloat(strings.TrimSpace(input.Value()), 64)
		m.invalid[i] = err != nil
		if err != nil {
			valid = false
			continue
		}
		values[i] = value
	}

	if !valid {
		m.logger.Debug("form input rejected", mdwlog.Fields{"invalid": m.invalidCount()})
		return m
	}

	a := mdwmathx.NewComplex(values[FieldRealA], values[FieldImagA])
	b := mdwmathx.NewComplex(values[FieldRealB], values[FieldImagB])

	transcript, err := demo.Transcript(a, b, demo.TranscriptOptions{Catalog: m.catalog, Format: m.format})
	if err != nil {
		m.err = err
		m.logger.LogError(err)
		return m
	}

	m.err = nil
	m.transcript = transcript
	m.viewport.SetContent(transcript)
	m.viewport.GotoTop()
	m.viewMode = ViewResult
	return m
}

func (m Model) invalidCount() int {
	n := 0
	for _, bad := range m.invalid {
		if bad {
			n++
		}
	}
	return n
}

// View implements tea.Model
func (m Model) View() string {
	switch m.viewMode {
	case ViewResult:
		return m.viewResult()
	default:
		return m.viewForm()
	}
}

// viewForm renders the input form
func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString(TitlePanelStyle.Render(TitleStyle.Render(m.catalog.T("form.title"))))
	b.WriteString("\n")

	// Pad by runes so Cyrillic and ASCII labels share a column
	labels := make([]string, fieldCount)
	for i, key := range fieldLabelKeys {
		labels[i] = m.catalog.T(key)
	}
	width := mdwstringx.MaxRuneWidth(labels...)

	for i, input := range m.inputs {
		text := mdwstringx.PadRight(labels[i], width, ' ')

		var label string
		switch {
		case m.invalid[i]:
			label = InvalidLabelStyle.Render(text)
		case i == m.focus:
			label = FocusedLabelStyle.Render(text)
		default:
			label = LabelStyle.Render(text)
		}

		b.WriteString(label + " " + input.View())
		if m.invalid[i] {
			b.WriteString(" " + ErrorStyle.Render(m.catalog.T("form.invalid")))
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n" + ErrorStyle.Render(m.err.Error()) + "\n")
	}

	b.WriteString(HelpStyle.Render(m.catalog.T("form.help")))
	return b.String()
}

// viewResult renders the transcript
func (m Model) viewResult() string {
	var b strings.Builder

	b.WriteString(TitlePanelStyle.Render(TitleStyle.Render(m.catalog.T("form.title"))))
	b.WriteString("\n")
	b.WriteString(ResultPanelStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.catalog.T("form.help")))
	return b.String()
}

// Mode returns the active view
func (m Model) Mode() ViewMode {
	return m.viewMode
}

// Transcript returns the last rendered transcript
func (m Model) Transcript() string {
	return m.transcript
}

// Invalid reports whether field failed validation on the last submit
func (m Model) Invalid(field int) bool {
	return field >= 0 && field < fieldCount && m.invalid[field]
}
