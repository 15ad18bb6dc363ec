//go:build tinycoll_debug

package store

// DebugCursors enables generation checks on cursors (tinycoll_debug builds)
const DebugCursors = true
