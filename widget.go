package notty

// InteractOutcome says what a widget did with an offered key event.
type InteractOutcome uint8

const (
	// SelectionMade means the widget consumed the key and produced a
	// selection index; the session sends the synthesized selection
	// literal instead of the key.
	SelectionMade InteractOutcome = iota
	// Forward means the widget declined the key; the session sends the
	// original key sequence.
	Forward
	// Consumed means the widget absorbed the key and nothing is sent.
	Consumed
)

// Widget is an on-screen interactive element, positioned at a buffer
// coordinate, that may intercept navigation and confirmation keys before
// they reach the controlling process.
type Widget interface {
	// Selectable reports whether the widget is in a state where it can
	// take keys at all, e.g. a menu with at least one entry.
	Selectable() bool
	// Interact offers a key event to the widget. The index is only
	// meaningful when the outcome is SelectionMade.
	Interact(ev KeyEvent) (int, InteractOutcome)
}
