// Package ui provides the visual components of the abacus calculator.
//
// Components are plain structs with SetSize/SetWidth and View methods; the
// app package owns the Bubble Tea model and decides which ones are shown.
//
// # Layout
//
//	┌──────────────────────────────────────────────┐
//	│ Header (1 line)                              │
//	├────────────────────┬─────────────────────────┤
//	│ Display            │                         │
//	│ Keypad             │  History or Convert     │
//	│                    │  panel (at most one)    │
//	├────────────────────┴─────────────────────────┤
//	│ Footer (1 line)                              │
//	└──────────────────────────────────────────────┘
//
// Keypad.ButtonAt and HistoryPanel.RowAt take coordinates relative to the
// component's top-left corner, so mouse handling only needs each origin.
//
// # Themes
//
// theme.go holds the light, dark and neon palettes. SetTheme rebuilds every
// style in styles.go, so components always read the package-level styles at
// render time rather than caching them.
package ui
