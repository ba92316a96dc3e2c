package types

// Event represents a typed event emitted during fee settlement and quest
// creation. Events are observable side effects for monitoring and tests; the
// engines never consume them.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}
