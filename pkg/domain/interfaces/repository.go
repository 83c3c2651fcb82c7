package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Note() NoteRepository
	Taxonomy() TaxonomyRepository

	Close() error
}
