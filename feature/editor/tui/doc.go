// Package tui is the terminal front end of the editor.
//
// The Model renders the visible rows of a reconcile.Session and forwards key presses
// to it: typing in the search box updates the filter query, editing a row focuses it
// so it stays visible while its value changes, and loads and exports run as tea.Cmd
// so the interface stays responsive.
//
// # Keys
//
//   - / : search keys and values
//   - m : toggle rows with an empty translation
//   - s : toggle rows whose translation equals the base text
//   - enter : edit the selected row (enter or esc to finish)
//   - ctrl+s : export to qplay_<lang>.json
//   - ctrl+y : copy the export to the clipboard
//   - tab : switch to the next configured language
//   - q : quit
package tui
