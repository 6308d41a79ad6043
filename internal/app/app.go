package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/abacus/internal/calc"
	"github.com/zhubert/abacus/internal/config"
	"github.com/zhubert/abacus/internal/convert"
	"github.com/zhubert/abacus/internal/history"
	"github.com/zhubert/abacus/internal/logger"
	"github.com/zhubert/abacus/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string

	calculator *calc.Calculator
	history    *history.Store

	header   *ui.Header
	footer   *ui.Footer
	display  *ui.Display
	keypad   *ui.Keypad
	panels   ui.PanelSet
	historyP *ui.HistoryPanel
	convertP *ui.ConvertPanel
	modal    *ui.Modal

	width  int
	height int

	log *slog.Logger
}

// ClipboardCopiedMsg reports the outcome of copying the result.
type ClipboardCopiedMsg struct {
	Text string
	Err  error
}

// ClipboardPastedMsg carries clipboard text read for a paste.
type ClipboardPastedMsg struct {
	Text string
	Err  error
}

// New creates the app model. store must already be loaded.
func New(cfg *config.Config, store *history.Store, version string) *Model {
	ui.SetThemeByName(cfg.GetTheme())

	category, err := convert.ParseCategory(cfg.GetLastCategory())
	if err != nil {
		category = convert.Categories()[0]
	}

	m := &Model{
		config:     cfg,
		version:    version,
		calculator: calc.New(),
		history:    store,
		header:     ui.NewHeader(),
		footer:     ui.NewFooter(),
		display:    ui.NewDisplay(),
		keypad:     ui.NewKeypad(),
		historyP:   ui.NewHistoryPanel(),
		convertP:   ui.NewConvertPanel(category),
		modal:      ui.NewModal(),
		log:        logger.ComponentLogger("App"),
	}
	m.historyP.SetEntries(store.Entries())
	m.syncDisplay()
	return m
}

// Init starts the flash timer if a startup warning is showing.
func (m *Model) Init() tea.Cmd {
	if m.footer.HasFlash() {
		return ui.FlashTick()
	}
	return nil
}

// Calculator returns the calculator state, for tests and the CLI.
func (m *Model) Calculator() *calc.Calculator {
	return m.calculator
}

// ActivePanel returns the open side panel.
func (m *Model) ActivePanel() ui.PanelKind {
	return m.panels.Active()
}

// syncDisplay copies calculator state into the display.
func (m *Model) syncDisplay() {
	m.display.SetInput(m.calculator.Input())
	result, ok := m.calculator.Result()
	m.display.SetResult(m.calculator.ResultText(), ok && result.Failed())
}

// syncPanels refreshes panel-dependent chrome after a panel opens or closes.
func (m *Model) syncPanels() {
	switch m.panels.Active() {
	case ui.PanelHistory:
		m.historyP.SetEntries(m.history.Entries())
		m.footer.SetMode(ui.FooterHistory)
		m.header.SetStatus("History")
	case ui.PanelConvert:
		m.footer.SetMode(ui.FooterConvert)
		m.header.SetStatus("Unit Conversion")
	default:
		m.footer.SetMode(ui.FooterCalculator)
		m.header.SetStatus("")
	}
	m.updateSizes()
}
