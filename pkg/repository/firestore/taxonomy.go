package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// taxonomyDocID is the well-known document holding a user's whole category
// set. One record per user, overwritten as a whole on merge.
const taxonomyDocID = "current"

type taxonomyDoc struct {
	Categories []string `firestore:"Categories"`
}

type taxonomyRepository struct {
	client *firestore.Client
}

func newTaxonomyRepository(client *firestore.Client) *taxonomyRepository {
	return &taxonomyRepository{
		client: client,
	}
}

func (r *taxonomyRepository) taxonomyDoc(userID types.UserID) *firestore.DocumentRef {
	return r.client.Collection("users").Doc(string(userID)).Collection("taxonomy").Doc(taxonomyDocID)
}

func (r *taxonomyRepository) Get(ctx context.Context, userID types.UserID) ([]string, error) {
	doc, err := r.taxonomyDoc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(types.ErrRecordNotFound, "taxonomy not found", goerr.V("user", userID))
		}
		return nil, goerr.Wrap(err, "failed to get taxonomy", goerr.V("user", userID))
	}

	var d taxonomyDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal taxonomy", goerr.V("user", userID))
	}

	return d.Categories, nil
}

func (r *taxonomyRepository) Put(ctx context.Context, userID types.UserID, categories []string) error {
	if _, err := r.taxonomyDoc(userID).Set(ctx, &taxonomyDoc{Categories: categories}); err != nil {
		return goerr.Wrap(err, "failed to put taxonomy", goerr.V("user", userID))
	}
	return nil
}
