package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// noteDoc is the Firestore document representation of model.Note.
type noteDoc struct {
	ID           types.NoteID `firestore:"ID"`
	Title        string       `firestore:"Title"`
	Content      string       `firestore:"Content"`
	Summary      string       `firestore:"Summary"`
	Categories   []string     `firestore:"Categories"`
	TotalParts   int          `firestore:"TotalParts"`
	AppliedParts []int        `firestore:"AppliedParts"`
	CreatedAt    time.Time    `firestore:"CreatedAt"`
	UpdatedAt    time.Time    `firestore:"UpdatedAt,omitempty"`
}

func toNoteDoc(n *model.Note) *noteDoc {
	return &noteDoc{
		ID:           n.ID,
		Title:        n.Title,
		Content:      n.Content,
		Summary:      n.Summary,
		Categories:   n.Categories,
		TotalParts:   n.TotalParts,
		AppliedParts: n.AppliedParts,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

func fromNoteDoc(d *noteDoc) *model.Note {
	return &model.Note{
		ID:           d.ID,
		Title:        d.Title,
		Content:      d.Content,
		Summary:      d.Summary,
		Categories:   d.Categories,
		TotalParts:   d.TotalParts,
		AppliedParts: d.AppliedParts,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func docToNote(doc *firestore.DocumentSnapshot) (*model.Note, error) {
	var d noteDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return fromNoteDoc(&d), nil
}

type noteRepository struct {
	client *firestore.Client
}

func newNoteRepository(client *firestore.Client) *noteRepository {
	return &noteRepository{
		client: client,
	}
}

func (r *noteRepository) notesCollection(userID types.UserID) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(string(userID)).Collection("notes")
}

func (r *noteRepository) Put(ctx context.Context, userID types.UserID, note *model.Note) error {
	docRef := r.notesCollection(userID).Doc(string(note.ID))
	if _, err := docRef.Set(ctx, toNoteDoc(note)); err != nil {
		return goerr.Wrap(err, "failed to put note", goerr.V("id", note.ID))
	}
	return nil
}

func (r *noteRepository) Get(ctx context.Context, userID types.UserID, id types.NoteID) (*model.Note, error) {
	doc, err := r.notesCollection(userID).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(types.ErrRecordNotFound, "note not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get note", goerr.V("id", id))
	}

	note, err := docToNote(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal note", goerr.V("id", id))
	}

	return note, nil
}

func (r *noteRepository) List(ctx context.Context, userID types.UserID) ([]*model.Note, error) {
	iter := r.notesCollection(userID).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	notes := make([]*model.Note, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate notes", goerr.V("user", userID))
		}

		note, err := docToNote(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal note")
		}

		notes = append(notes, note)
	}

	return notes, nil
}

func (r *noteRepository) Delete(ctx context.Context, userID types.UserID, id types.NoteID) error {
	docRef := r.notesCollection(userID).Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(types.ErrRecordNotFound, "note not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get note", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete note", goerr.V("id", id))
	}

	return nil
}
