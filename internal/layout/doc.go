// Package layout holds the pure geometry behind the UI: the adaptive grid
// that switches between a fixed multi-row grid and a horizontally scrolling
// strip, and the drag controller that resizes the side panels. Everything
// here is plain arithmetic on widths and counts so it can be tested without
// a terminal.
package layout
