// Package driver glues input loading, the grid scanner, the solver
// registry and the answer cache together for the CLI.
package driver
