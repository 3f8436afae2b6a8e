// Package numentry provides a numeric input widget for Fyne: a single-line
// entry that only accepts numbers inside an inclusive range, shows an inline
// unit suffix, reports parse validity on every keystroke and clamps
// out-of-range values when the edit is committed.
package numentry
