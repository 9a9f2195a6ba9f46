// Package cli provides the interactive newsdesk terminal client.
//
// It wires configuration, the local token database, the API services and an
// interactive REPL. Typical flow: restore the saved session, start a
// background connectivity watcher, and execute user commands.
//
// Pages mirror the paths of the web reader: "/", "/news/{id}", "/login",
// "/register", "/profile", "/recommendations", "/saved", "/subscription",
// "/notifications" and "/admin". They are reached with "go <path>" or with
// shorthand commands such as "news", "show 12" or "saved". Protected paths
// redirect to "/login"; unknown paths show the home feed.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Resolve, Guard and runREPL for details.
package cli
