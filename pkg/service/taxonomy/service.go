package taxonomy

import (
	"context"
	"errors"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/domain/interfaces"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
	"github.com/secmon-lab/inkwell/pkg/utils/logging"
)

// DefaultCategories is the built-in category set a user starts from before
// any note of theirs has contributed a name.
var DefaultCategories = []string{
	"Science", "Math", "History", "Literature", "Personal", "Work",
	"Ideas", "Tasks", "Philosophy", "Psychology", "Technology", "Miscellaneous",
}

// Service is the per-user category taxonomy store. The default set is
// injected at construction rather than read from a package global, so tests
// and deployments can swap it.
type Service struct {
	repo     interfaces.TaxonomyRepository
	defaults []string
}

func New(repo interfaces.TaxonomyRepository, defaults []string) *Service {
	if len(defaults) == 0 {
		defaults = DefaultCategories
	}
	return &Service{
		repo:     repo,
		defaults: slices.Clone(defaults),
	}
}

// Read returns the user's persisted category set, or the default set when no
// record exists yet. A missing record is a normal condition, and a failing
// store must not fail the caller either: prompt building degrades to the
// defaults and the failure is only logged.
func (s *Service) Read(ctx context.Context, userID types.UserID) []string {
	categories, err := s.repo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, types.ErrRecordNotFound) {
			logging.From(ctx).Error("failed to read taxonomy, using defaults",
				"user", userID, "error", err.Error())
		}
		return slices.Clone(s.defaults)
	}
	return categories
}

// Merge folds newly extracted category names into the user's taxonomy:
// union with the current set, lexicographic sort, full overwrite. It is a
// read-then-overwrite, not an atomic add; concurrent merges for the same user
// may drop the loser's additions. Callers dispatch it off the request path,
// so a lost entry costs a re-extraction at worst, never a failed ingestion.
func (s *Service) Merge(ctx context.Context, userID types.UserID, newCategories []string) error {
	if len(newCategories) == 0 {
		return nil
	}

	merged := model.MergeCategories(s.Read(ctx, userID), newCategories)
	if err := s.repo.Put(ctx, userID, merged); err != nil {
		return goerr.Wrap(err, "failed to persist merged taxonomy", goerr.V("user", userID))
	}

	logging.From(ctx).Debug("taxonomy updated", "user", userID, "categories", merged)
	return nil
}
