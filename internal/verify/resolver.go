package verify

import (
	"github.com/NadilaEriani/posbankum/internal/domain"
)

// ResolveCurrent groups a unit's submissions by canonical category and
// picks the authoritative one per category: latest upload timestamp
// wins; on equal or zero timestamps the earliest-encountered input
// entry is kept, so the result does not depend on backend ordering.
// Categories with no submissions are simply absent from the map.
func (n *Normalizer) ResolveCurrent(subs []domain.Submission) map[domain.Category]domain.Submission {
	current := make(map[domain.Category]domain.Submission, len(subs))
	for _, s := range subs {
		key := n.Normalize(s.RawCategory)
		if key == "" {
			continue
		}
		prev, ok := current[key]
		if !ok {
			current[key] = s
			continue
		}
		if s.UploadedAt.After(prev.UploadedAt) {
			current[key] = s
		}
	}
	return current
}
