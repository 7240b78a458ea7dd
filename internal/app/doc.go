// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the two ways of running the engine: one
// sheet file at a time, or as an HTTP server for browser grids. It is
// decoupled from any specific entrypoint like a CLI.
package app
