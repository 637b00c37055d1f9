package repositories

// DocumentStore persists rendered report documents.
type DocumentStore interface {
	// Save writes the document under a generated name and returns its path.
	Save(document string) (string, error)

	// SaveTo writes the document to an exact caller-chosen path.
	SaveTo(path string, document string) error
}
