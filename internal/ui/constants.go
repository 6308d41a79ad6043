// Package ui provides constants for layout calculations.
package ui

// Layout constants
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// PaddingSize is the horizontal padding inside bordered boxes (Padding(0, 1))
	PaddingSize = 2

	// DisplayLines is the number of content lines in the display (input + result)
	DisplayLines = 2

	// PanelMinWidth is the narrowest the side panel is drawn
	PanelMinWidth = 30

	// PanelGap is the space between the calculator column and the side panel
	PanelGap = 1
)

// Keypad geometry
const (
	// KeyWidth is the width of one keypad button in cells
	KeyWidth = 7

	// KeyHeight is the height of one keypad button in lines
	KeyHeight = 1

	// KeyColumnGap is the space between buttons in a row
	KeyColumnGap = 1

	// KeyRowGap is the number of blank lines between rows
	KeyRowGap = 1

	// KeypadColumns is the number of button columns
	KeypadColumns = 4
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 52

	// ConvertFormWidth is the width of the huh form inside the conversion panel
	ConvertFormWidth = 30
)

// ResultFlashMillis is how long the result line stays highlighted after a
// successful evaluation.
const ResultFlashMillis = 300
