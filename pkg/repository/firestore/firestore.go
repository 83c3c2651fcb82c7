package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/domain/interfaces"
)

// Firestore is the production repository backend. Each user's notes live in
// a subcollection under the user document so one user's data never shows up
// in another's queries.
type Firestore struct {
	client   *firestore.Client
	note     *noteRepository
	taxonomy *taxonomyRepository
}

var _ interfaces.Repository = &Firestore{}

func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID == "" {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	return &Firestore{
		client:   client,
		note:     newNoteRepository(client),
		taxonomy: newTaxonomyRepository(client),
	}, nil
}

func (f *Firestore) Note() interfaces.NoteRepository {
	return f.note
}

func (f *Firestore) Taxonomy() interfaces.TaxonomyRepository {
	return f.taxonomy
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
