// Package config loads and validates quill's settings.
//
// Settings come from one file, TOML or YAML by extension, with QUILL_
// environment variables layered on top and built-in defaults underneath:
//
//	[editor]
//	page_size = 20
//	indent_width = 4
//	use_tabs = false
//
//	[history]
//	capacity = 1000
//
//	[log]
//	level = "info"
//
//	[theme]
//	selection = "#264f78"
//
//	[contexts.goto_line]
//	allowed = "0123456789:"
//	max_length = 12
//
// An environment variable QUILL_<SECTION>_<KEY> sets section.key, so
// QUILL_EDITOR_PAGE_SIZE=40 overrides editor.page_size.
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment sources as generic maps
//   - watcher: fsnotify based file watching for live reload
//
// # Live Reload
//
// A Reloader watches the file and delivers each reloaded Config on a
// channel. The consumer applies it on its own goroutine; the engine
// itself is never touched from the watcher.
//
//	r, err := config.NewReloader(path, 100*time.Millisecond)
//	...
//	for u := range r.Updates() {
//	    if u.Err == nil {
//	        cfg = u.Config
//	    }
//	}
package config
