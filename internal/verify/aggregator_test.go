package verify

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

func unitSub(unitID domain.UnitID, cat, status string, at time.Time) domain.Submission {
	s := sub(cat, status, at)
	s.UnitID = unitID
	return s
}

func TestComputeCompletenessAllApproved(t *testing.T) {
	n := NewNormalizer(DefaultAliasTable())
	unitID := uuid.New()
	at := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)

	var subs []domain.Submission
	for _, c := range RequiredCategories() {
		subs = append(subs, unitSub(unitID, string(c), "disetujui", at))
	}
	rep := n.ComputeCompleteness(unitID, RequiredCategories(), n.ResolveCurrent(subs))

	assert.True(t, rep.Complete)
	require.Len(t, rep.Docs, 4)
	for _, d := range rep.Docs {
		assert.Equal(t, DocApproved, d.State)
	}
}

func TestComputeCompletenessMissingCategory(t *testing.T) {
	n := NewNormalizer(DefaultAliasTable())
	unitID := uuid.New()
	at := time.Now()

	// approved for 3 of 4, nothing for tagging_area
	subs := []domain.Submission{
		unitSub(unitID, "sk_posbankum", "disetujui", at),
		unitSub(unitID, "sk_kadarkum", "disetujui", at),
		unitSub(unitID, "sarpras", "disetujui", at),
	}
	rep := n.ComputeCompleteness(unitID, RequiredCategories(), n.ResolveCurrent(subs))

	assert.False(t, rep.Complete)
	require.Len(t, rep.Docs, 4)
	byCat := map[domain.Category]CategoryReport{}
	for _, d := range rep.Docs {
		byCat[d.Category] = d
	}
	assert.Equal(t, DocMissing, byCat["tagging_area"].State)
	assert.Nil(t, byCat["tagging_area"].UploadedAt)
}

func TestComputeCompletenessNoPartialCredit(t *testing.T) {
	n := NewNormalizer(DefaultAliasTable())
	unitID := uuid.New()
	at := time.Now()

	for _, bad := range []string{"menunggu", "ditolak"} {
		subs := []domain.Submission{
			unitSub(unitID, "sk_posbankum", "disetujui", at),
			unitSub(unitID, "sk_kadarkum", "disetujui", at),
			unitSub(unitID, "sarpras", "disetujui", at),
			unitSub(unitID, "tagging_area", bad, at),
		}
		rep := n.ComputeCompleteness(unitID, RequiredCategories(), n.ResolveCurrent(subs))
		assert.False(t, rep.Complete, "status=%s", bad)
	}
}

// A later pending resubmission supersedes an older approved document,
// so the unit reads as incomplete again.
func TestCompletenessSupersededApproval(t *testing.T) {
	n := NewNormalizer(DefaultAliasTable())
	unitID := uuid.New()
	t1 := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	subs := []domain.Submission{
		unitSub(unitID, "sk_posbankum", "disetujui", t1),
		unitSub(unitID, "sk_kadarkum", "disetujui", t1),
		unitSub(unitID, "tagging_area", "disetujui", t1),
		unitSub(unitID, "sarpras", "disetujui", t1),
		unitSub(unitID, "sarpras", "menunggu", t2),
	}
	current := n.ResolveCurrent(subs)
	rep := n.ComputeCompleteness(unitID, RequiredCategories(), current)

	assert.False(t, rep.Complete)
	assert.Equal(t, domain.StatusPending, NormalizeStatus(current["sarpras"].RawStatus))
}

func TestComputeCompletenessIdempotent(t *testing.T) {
	n := NewNormalizer(DefaultAliasTable())
	unitID := uuid.New()
	subs := []domain.Submission{
		unitSub(unitID, "sk_posbankum", "menunggu", time.Now()),
	}
	current := n.ResolveCurrent(subs)
	a := n.ComputeCompleteness(unitID, RequiredCategories(), current)
	b := n.ComputeCompleteness(unitID, RequiredCategories(), current)
	assert.Equal(t, a, b)
}

func TestComputeFleet(t *testing.T) {
	n := NewNormalizer(DefaultAliasTable())
	at := time.Now()

	complete := domain.Unit{ID: uuid.New(), Name: "kelurahan Kampung Tengah"}
	incomplete := domain.Unit{ID: uuid.New(), Name: "kelurahan Sungaiukai"}
	empty := domain.Unit{ID: uuid.New(), Name: "kelurahan Sukajadi"}

	snap := domain.Snapshot{
		Units: []domain.Unit{complete, incomplete, empty},
		Submissions: map[domain.UnitID][]domain.Submission{
			complete.ID: {
				unitSub(complete.ID, "sk_posbankum", "disetujui", at),
				unitSub(complete.ID, "sk_kadarkum", "disetujui", at),
				unitSub(complete.ID, "sarpras", "disetujui", at),
				unitSub(complete.ID, "tagging_area", "disetujui", at),
			},
			incomplete.ID: {
				unitSub(incomplete.ID, "sk_posbankum", "menunggu", at),
				unitSub(incomplete.ID, "sarpras", "menunggu", at),
			},
		},
	}

	rep := n.ComputeFleet(RequiredCategories(), snap)
	assert.Equal(t, 3, rep.Stats.UnitsEvaluated)
	assert.Equal(t, 2, rep.Stats.PendingDocs)
	assert.Equal(t, 2, rep.Stats.IncompleteUnits)
	assert.False(t, rep.Stats.Indeterminate)
	require.Len(t, rep.Reports, 3)
}

func TestComputeFleetPartialSnapshot(t *testing.T) {
	n := NewNormalizer(DefaultAliasTable())
	snap := domain.Snapshot{
		Units:   []domain.Unit{{ID: uuid.New()}},
		Partial: true,
		Reason:  "submission fetch failed",
	}
	rep := n.ComputeFleet(RequiredCategories(), snap)
	assert.True(t, rep.Stats.Indeterminate)
	assert.Equal(t, "submission fetch failed", rep.Stats.Reason)
	assert.Zero(t, rep.Stats.UnitsEvaluated)
	assert.Empty(t, rep.Reports, "no fabricated verdicts from partial data")
}
