// Package app is the composition root: it loads configuration and
// preferences, opens the analytics store, warms the artwork gradient
// cache, wires the player session to its ports, and runs the UI until the
// context is cancelled.
package app
