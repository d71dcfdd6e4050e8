// Package viewer runs one reading session.
//
// A Session owns the open comic, its overlay controller and the page history.
// Every user action is a named Action passed to Dispatch, which performs one
// state change and returns the Effects the render layer must carry out:
// timers to schedule, the page image to probe, a fullscreen switch. Nothing
// here blocks or starts goroutines, which keeps each action atomic with
// respect to the next.
package viewer
