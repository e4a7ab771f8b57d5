// Package pantry carries module-level metadata shared by the CLI.
package pantry

// Version is the semantic version of the pantry module.
const Version = "v0.1.0"
