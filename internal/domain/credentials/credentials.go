package credentials

// Record holds the bot token and destination chat remembered between sessions.
// Empty fields mean "not configured yet".
type Record struct {
	Token  string `json:"token,omitempty"`
	ChatID string `json:"chat_id,omitempty"`
}

// Store loads and persists the credential record.
type Store interface {
	// Load never fails: a missing or unreadable record comes back empty.
	Load() Record
	Save(rec Record) error
}
