package ui

// SessionDoneMsg is sent by the session view when the stopwatch is
// stopped via toggle. The root model switches to the results view and
// never switches back.
type SessionDoneMsg struct{}

// ThemeChangedMsg is broadcast by the root model to all views after a
// theme change so they pick up the rebuilt styles.
type ThemeChangedMsg struct {
	Styles Styles
}
