// Package ui holds the small terminal helpers shared by the one-shot
// commands: status symbols, a semantic color palette, and a spinner for
// work that blocks the prompt.
package ui
