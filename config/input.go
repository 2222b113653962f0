package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionDash
	ActionPause
	ActionDebug
	ActionRestart
	ActionCount // Must be last - used for array sizing
)
