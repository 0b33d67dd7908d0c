package polyui

// Settings are behavior toggles shared by the whole tree.
type Settings struct {
	// ReclaimInitHandlers frees Init handler chains after they fire.
	// They are one-shot, so this is safe unless components are rebuilt
	// by resetting their initialized state externally.
	ReclaimInitHandlers bool

	// Debug enables verbose dispatch logging.
	Debug bool
}

// Context is the shared state handed to every component at setup: the
// active theme, the event dispatcher that owns pointer and focus state,
// the frame clock and the tree-wide settings.
type Context struct {
	Theme      *Theme
	Dispatcher *Dispatcher
	Clock      Clock
	Settings   Settings
}
