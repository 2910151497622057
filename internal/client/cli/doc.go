// Package cli provides the interactive academy command-line client.
//
// It wires configuration, local storage, the REST gateway and the services
// into a REPL whose commands stand in for the web views: browsing courses,
// buying one through the payment wizard, and the admin dashboard. Every
// command that opens a protected view is checked by the route guard against
// the current session snapshot first.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
