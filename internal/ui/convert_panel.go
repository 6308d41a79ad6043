package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/abacus/internal/convert"
)

// ConvertPanel is the unit conversion form: category, from unit, to unit and
// value, plus a one-line outcome.
type ConvertPanel struct {
	width  int
	height int

	// Bound form values
	category string
	from     string
	to       string
	value    string

	// lastCategory detects category changes made through the form.
	lastCategory string

	message string
	failed  bool

	form *huh.Form
}

// NewConvertPanel creates a panel on category, falling back to the first
// category when it is unknown.
func NewConvertPanel(category convert.Category) *ConvertPanel {
	if convert.Units(category) == nil {
		category = convert.Categories()[0]
	}
	p := &ConvertPanel{category: string(category)}
	p.resetUnits()
	p.rebuildForm()
	return p
}

// SetSize sets the outer size, borders included.
func (p *ConvertPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.form.WithWidth(p.formWidth())
}

func (p *ConvertPanel) formWidth() int {
	return max(p.width-BorderSize-PaddingSize, ConvertFormWidth)
}

func (p *ConvertPanel) resetUnits() {
	p.from, p.to = convert.DefaultPair(convert.Category(p.category))
	p.lastCategory = p.category
}

func (p *ConvertPanel) rebuildForm() {
	categories := convert.Categories()
	categoryOptions := make([]huh.Option[string], len(categories))
	for i, c := range categories {
		categoryOptions[i] = huh.NewOption(strings.ToUpper(string(c[:1]))+string(c[1:]), string(c))
	}

	units := convert.Units(convert.Category(p.category))
	unitOptions := make([]huh.Option[string], len(units))
	for i, u := range units {
		unitOptions[i] = huh.NewOption(u, u)
	}

	p.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Category").
			Options(categoryOptions...).
			Inline(true).
			Value(&p.category),
		huh.NewSelect[string]().
			Title("From").
			Options(unitOptions...).
			Inline(true).
			Value(&p.from),
		huh.NewSelect[string]().
			Title("To").
			Options(unitOptions...).
			Inline(true).
			Value(&p.to),
		huh.NewInput().
			Title("Value").
			Placeholder("1").
			Value(&p.value),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(p.formWidth())
	p.form.Init()
}

// Restyle rebuilds the form so it picks up the current theme.
func (p *ConvertPanel) Restyle() {
	p.rebuildForm()
}

// Category returns the selected category.
func (p *ConvertPanel) Category() convert.Category {
	return convert.Category(p.category)
}

// Units returns the selected from and to units.
func (p *ConvertPanel) Units() (from, to string) {
	return p.from, p.to
}

// Value returns the raw value field.
func (p *ConvertPanel) Value() string {
	return p.value
}

// SetValue fills the value field, for example from the calculator result.
func (p *ConvertPanel) SetValue(v string) {
	p.value = v
	p.rebuildForm()
}

// Message returns the outcome line and whether it is an error.
func (p *ConvertPanel) Message() (string, bool) {
	return p.message, p.failed
}

// Request builds the conversion from the form. Non-numeric values return
// convert.ErrInvalidValue.
func (p *ConvertPanel) Request() (convert.Request, error) {
	v, err := convert.ParseValue(p.value)
	if err != nil {
		return convert.Request{}, err
	}
	return convert.Request{Category: p.Category(), From: p.from, To: p.to, Value: v}, nil
}

// Convert runs the conversion and stores the outcome line. Failures are
// shown inline, never returned to the caller as fatal.
func (p *ConvertPanel) Convert() error {
	req, err := p.Request()
	if err != nil {
		p.message, p.failed = convert.InvalidValueMessage, true
		return err
	}
	result, err := convert.Convert(req)
	if err != nil {
		p.message, p.failed = err.Error(), true
		return err
	}
	p.message, p.failed = convert.Format(req, result), false
	return nil
}

// Swap exchanges the from and to units and converts again.
func (p *ConvertPanel) Swap() error {
	p.from, p.to = p.to, p.from
	p.rebuildForm()
	return p.Convert()
}

// Update forwards input to the form. Enter and Escape are left to the app.
func (p *ConvertPanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.form, cmd = huhFormUpdate(p.form, msg)

	if p.category != p.lastCategory {
		p.resetUnits()
		p.message = ""
		p.rebuildForm()
		return nil
	}

	// Tabbing past the last field submits the form; start over so the panel
	// stays editable.
	if p.form.State != huh.StateNormal {
		p.rebuildForm()
		return nil
	}
	return cmd
}

// View renders the panel.
func (p *ConvertPanel) View() string {
	parts := []string{
		PanelTitleStyle.Render("Unit Conversion"),
		"",
		p.form.View(),
	}
	if p.message != "" {
		style := ConvertResultStyle
		if p.failed {
			style = ConvertErrorStyle
		}
		parts = append(parts, "", style.Render(p.message))
	}

	style := PanelFocusedStyle
	if p.height > 0 {
		style = style.Height(p.height)
	}
	return style.Width(p.width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
