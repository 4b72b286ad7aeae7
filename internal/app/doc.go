// Package app contains the application logic of the nodegraph driver. It
// defines the App struct, its configuration, and the run lifecycle that builds
// a graph and reports a cycle or a trace, decoupled from any specific
// entrypoint like a CLI.
package app
