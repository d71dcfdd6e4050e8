// Package config loads the gutter configuration file.
//
// The file lives at $XDG_CONFIG_HOME/gutter/config.toml unless a path is
// given. A missing file is not an error; every key is optional and empty
// values fall back to defaults:
//
//	image_base     = "~/comics"        # directory or http(s) URL
//	page_pattern   = "page-##"
//	thumb_pattern  = "thumb-##"
//	fade_delay     = "3s"
//	close_delay    = "250ms"
//	bookmarks_path = "$XDG_STATE_HOME/gutter/bookmarks.toml"
//	log_file       = "$XDG_STATE_HOME/gutter/gutter.log"
//	log_level      = "info"
//	theme          = ""                # initial theme when none was saved
//
// Paths starting with ~ are expanded. Invalid TOML, bad durations and
// patterns without a # placeholder are reported as errors.
package config
