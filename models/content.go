package models

// Content is a single owned entry in a user's content collection: one todo
// record. The payload is opaque to the store: it is an
// application-defined structured value persisted and returned verbatim.
type Content struct {
	// ID is the identifier of the entry, unique within the owning user's
	// collection. IDs are not globally unique: two users may hold entries
	// with colliding IDs and still never see each other's content.
	ID string `json:"id"`

	// Content is the application-defined payload. It must be non-nil.
	Content any `json:"content"`
}

// ContentFilter selects entries from a user's content collection.
// A nil filter matches every entry.
type ContentFilter func(Content) bool
