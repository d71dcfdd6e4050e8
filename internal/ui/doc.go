// Package ui renders a viewing session in the terminal with Bubble Tea.
//
// The model owns no viewer state of its own beyond presentation details such
// as the gallery cursor, the theme and the jump prompt. Input is translated
// into viewer actions; the effects each action returns become commands:
//
//   - overlay timers become tea.Tick commands that hand the timer back to the
//     session when they elapse, where stale generations are ignored
//   - image probes run as commands and report back tagged with the page
//     change they belong to
//   - fullscreen switches between the inline view and the alternate screen
//
// The comic metadata is loaded by a command on a fresh comic instance and
// installed in Update, so the session is only ever touched on the UI
// goroutine.
package ui
