package player

import "github.com/joshify/joshify/internal/history"

// History is the navigation stack the session pushes onto and restores
// from. *history.Stack is the in-process implementation.
type History interface {
	Push(history.Entry)
	Replace(history.Entry)
	Back() (history.Entry, bool)
	Forward() (history.Entry, bool)
	Current() (history.Entry, bool)
	Len() int
}

// Storage persists the two durable user values the player owns: the volume
// level, mirrored on every change, and the one-time welcome flag.
type Storage interface {
	Volume() float64
	SetVolume(v float64)
	WelcomeSeen() bool
	SetWelcomeSeen()
}

// Analytics receives one page view per successful navigation. Calls are
// best-effort; implementations must not block or fail the caller.
type Analytics interface {
	Pageview(path string)
}
