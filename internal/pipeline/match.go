package pipeline

import (
	"deckcheck/internal"
	"deckcheck/internal/catalog"
	"deckcheck/internal/util"
)

// Reconciler classifies deck records as owned or not owned against a
// collection index.
type Reconciler struct {
	policy internal.MatchPolicy
	index  *catalog.Index
}

func NewReconciler(policy internal.MatchPolicy, index *catalog.Index) *Reconciler {
	return &Reconciler{policy: policy, index: index}
}

// Owns reports whether a deck card name is in the collection under the
// configured policy.
func (r *Reconciler) Owns(name string) bool {
	normalized := util.NormalizeName(name)
	if normalized == "" {
		return false
	}
	if r.policy == internal.MatchSubstring {
		return r.index.ContainsSubstring(normalized)
	}
	return r.index.Has(normalized)
}

// Reconcile is a stable partition of records. Records without a name are
// collected in Skipped instead of either side.
func (r *Reconciler) Reconcile(records []internal.DeckRecord) internal.ReconciliationResult {
	result := internal.ReconciliationResult{
		Owned:    []internal.DeckRecord{},
		NotOwned: []internal.DeckRecord{},
	}
	for _, record := range records {
		if util.NormalizeName(record.Name) == "" {
			result.Skipped = append(result.Skipped, record)
			continue
		}
		if r.Owns(record.Name) {
			result.Owned = append(result.Owned, record)
		} else {
			result.NotOwned = append(result.NotOwned, record)
		}
	}
	return result
}
