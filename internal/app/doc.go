// Package app provides the orchestration layer for gutter.
//
// # Overview
//
// This package wires configuration, logging, the image library, the
// bookmark store and the UI into one run of the viewer. It is the
// composition root: no other package reaches for another's constructor.
//
// # Startup
//
//  1. Load $XDG_CONFIG_HOME/gutter/config.toml (command line flags override it)
//  2. Open the rotated log file
//  3. Pick the image source: http(s) bases use the HTTP client, anything else
//     is a local directory
//  4. Load the saved bookmarks
//  5. Parse the locator; a locator without a comic id is not fatal, the
//     viewer starts and shows "No comic specified."
//  6. Check whether stdout is a terminal; fullscreen needs one
//  7. Run the UI until the reader quits or the context is cancelled
//
// # Shutdown
//
// The current page is saved as the comic's bookmark, but only when the comic
// actually loaded. Bookmark failures are logged and never fail the run.
//
// # Errors
//
// Run returns errors for an unreadable config, an unknown log level, an
// empty image base and a failing terminal program. Everything that goes
// wrong after the UI starts is shown inside the viewer instead.
package app
