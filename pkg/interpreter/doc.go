// Package interpreter evaluates parsed programs over the runtime value
// model. It owns the statement and expression semantics, the global scope,
// the typed error taxonomy, and the registration hook for host natives.
package interpreter
