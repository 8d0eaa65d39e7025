package verify

import (
	"time"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

// Per-category verdict inside a unit report. "missing" means no
// submission exists at all, which is distinct from a rejected one.
type DocState string

const (
	DocMissing  DocState = "missing"
	DocPending  DocState = "pending"
	DocApproved DocState = "approved"
	DocRejected DocState = "rejected"
)

func docState(st domain.VerifyStatus) DocState {
	switch st {
	case domain.StatusApproved:
		return DocApproved
	case domain.StatusRejected:
		return DocRejected
	default:
		return DocPending
	}
}

type CategoryReport struct {
	Category   domain.Category    `json:"kategori"`
	State      DocState           `json:"status"`
	Submission *domain.Submission `json:"-"`
	UploadedAt *time.Time         `json:"tgl_upload,omitempty"`
}

type UnitReport struct {
	UnitID   domain.UnitID    `json:"id_posbankum"`
	Complete bool             `json:"complete"`
	Docs     []CategoryReport `json:"docs"`
}

// ComputeCompleteness evaluates one unit's current submissions against
// the required checklist. Complete is true iff every required category
// is exactly approved; missing, pending and rejected all count as
// incomplete. Pure and idempotent over an unchanged snapshot.
func (n *Normalizer) ComputeCompleteness(unitID domain.UnitID, required []domain.Category, current map[domain.Category]domain.Submission) UnitReport {
	rep := UnitReport{UnitID: unitID, Complete: true, Docs: make([]CategoryReport, 0, len(required))}
	for _, cat := range required {
		cr := CategoryReport{Category: cat, State: DocMissing}
		if s, ok := current[cat]; ok {
			s := s
			cr.Submission = &s
			cr.State = docState(NormalizeStatus(s.RawStatus))
			if !s.UploadedAt.IsZero() {
				t := s.UploadedAt
				cr.UploadedAt = &t
			}
		}
		if cr.State != DocApproved {
			rep.Complete = false
		}
		rep.Docs = append(rep.Docs, cr)
	}
	return rep
}

// Fleet-wide counters for the admin dashboard. Recomputed from the
// snapshot on every read, so they are always consistent with it.
type FleetStats struct {
	UnitsEvaluated  int    `json:"units_evaluated"`
	PendingDocs     int    `json:"pending_docs"`
	IncompleteUnits int    `json:"incomplete_units"`
	Indeterminate   bool   `json:"indeterminate,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

type FleetReport struct {
	Stats   FleetStats   `json:"stats"`
	Reports []UnitReport `json:"reports"`
}

// ComputeFleet folds ComputeCompleteness over all units of a snapshot.
// A partial snapshot yields an explicitly indeterminate result instead
// of a fabricated complete/incomplete verdict.
func (n *Normalizer) ComputeFleet(required []domain.Category, snap domain.Snapshot) FleetReport {
	out := FleetReport{Reports: make([]UnitReport, 0, len(snap.Units))}
	if snap.Partial {
		out.Stats.Indeterminate = true
		out.Stats.Reason = snap.Reason
		return out
	}
	for _, u := range snap.Units {
		current := n.ResolveCurrent(snap.Submissions[u.ID])
		rep := n.ComputeCompleteness(u.ID, required, current)
		out.Stats.UnitsEvaluated++
		if !rep.Complete {
			out.Stats.IncompleteUnits++
		}
		// pending is counted over current submissions, not just the
		// required checklist, so stray categories still show up
		for _, s := range current {
			if NormalizeStatus(s.RawStatus) == domain.StatusPending {
				out.Stats.PendingDocs++
			}
		}
		out.Reports = append(out.Reports, rep)
	}
	return out
}
