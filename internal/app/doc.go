// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run-to-completion pipeline that loads
// a manifest, snapshots the environment, resolves it, and prints the
// result, decoupled from any specific entrypoint like a CLI.
package app
