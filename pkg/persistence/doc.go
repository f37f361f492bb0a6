// Package persistence stores runtime registry extensions across
// process restarts.
//
// The built-in and externally loaded unit tables are configuration and
// are never persisted here. Only units registered at runtime (for
// example through the repl's register command) are saved, as a small
// versioned JSON state file, and replayed into a fresh registry on
// startup.
package persistence
