package verify

import (
	"strings"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

// AliasTable maps known spelling/terminology variants of category labels
// to one canonical key. It is explicit, versioned configuration: new
// variants are additive data, not code edits.
type AliasTable struct {
	Version string
	Aliases map[string]domain.Category
}

// DefaultAliasTable carries the variants observed in the production
// database (historical rows mix "sapras"/"sarpras", "sk kab/kota" etc.).
func DefaultAliasTable() AliasTable {
	return AliasTable{
		Version: "2025-06",
		Aliases: map[string]domain.Category{
			"sk_posbankum": "sk_posbankum",
			"sk posbankum": "sk_posbankum",

			"sk_kadarkum": "sk_kadarkum",
			"sk kadarkum": "sk_kadarkum",
			"sk kab/kota": "sk_kadarkum",

			"sarpras":             "sarpras",
			"sapras":              "sarpras",
			"dokumentasi sarpras": "sarpras",
			"dokumentasi sapras":  "sarpras",

			"tagging_area": "tagging_area",
			"tagging area": "tagging_area",
		},
	}
}

// RequiredCategories is the fixed checklist of the reference deployment.
func RequiredCategories() []domain.Category {
	return []domain.Category{"sk_posbankum", "sk_kadarkum", "sarpras", "tagging_area"}
}

type Normalizer struct {
	table AliasTable
}

func NewNormalizer(t AliasTable) *Normalizer {
	if t.Aliases == nil {
		t.Aliases = map[string]domain.Category{}
	}
	return &Normalizer{table: t}
}

// Normalize maps a raw category label to its canonical key. Total: an
// unrecognized label becomes its own (normalized) key rather than an
// error, so historical drift never breaks a read.
func (n *Normalizer) Normalize(raw string) domain.Category {
	s := fold(raw)
	if c, ok := n.table.Aliases[s]; ok {
		return c
	}
	return domain.Category(s)
}

// Known reports whether a raw label resolves into the alias table,
// i.e. did not fall through to the closed-world default.
func (n *Normalizer) Known(raw string) bool {
	_, ok := n.table.Aliases[fold(raw)]
	return ok
}

// trim, lowercase, collapse internal whitespace runs
func fold(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Status spellings observed across the original modules. Anything
// unknown (including empty) counts as pending.
var statusAliases = map[string]domain.VerifyStatus{
	"menunggu":   domain.StatusPending,
	"pending":    domain.StatusPending,
	"review":     domain.StatusPending,
	"verifikasi": domain.StatusPending,

	"setuju":    domain.StatusApproved,
	"disetujui": domain.StatusApproved,
	"approved":  domain.StatusApproved,
	"approve":   domain.StatusApproved,
	"valid":     domain.StatusApproved,
	"diterima":  domain.StatusApproved,

	"tolak":    domain.StatusRejected,
	"ditolak":  domain.StatusRejected,
	"rejected": domain.StatusRejected,
	"reject":   domain.StatusRejected,
}

// NormalizeStatus is total and never fails, mirroring Normalize.
func NormalizeStatus(raw string) domain.VerifyStatus {
	if st, ok := statusAliases[fold(raw)]; ok {
		return st
	}
	return domain.StatusPending
}
