package memory

import (
	"github.com/secmon-lab/inkwell/pkg/domain/interfaces"
)

// Memory is an in-memory repository for development and tests.
type Memory struct {
	note     *noteRepository
	taxonomy *taxonomyRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		note:     newNoteRepository(),
		taxonomy: newTaxonomyRepository(),
	}
}

func (m *Memory) Note() interfaces.NoteRepository {
	return m.note
}

func (m *Memory) Taxonomy() interfaces.TaxonomyRepository {
	return m.taxonomy
}

func (m *Memory) Close() error {
	return nil
}
