package report

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/verify"
)

type fakeUnits struct {
	units   []domain.Unit
	listErr error
}

func (f *fakeUnits) Close() {}
func (f *fakeUnits) Ping(context.Context) error { return nil }
func (f *fakeUnits) CreateUnit(_ context.Context, u domain.Unit) (domain.Unit, error) {
	return u, nil
}
func (f *fakeUnits) UpdateUnit(_ context.Context, u domain.Unit) (domain.Unit, error) {
	return u, nil
}
func (f *fakeUnits) DeleteUnit(context.Context, domain.UnitID) error { return nil }
func (f *fakeUnits) UnitByID(_ context.Context, id domain.UnitID) (domain.Unit, error) {
	for _, u := range f.units {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.Unit{}, domain.ErrNotFound
}
func (f *fakeUnits) UnitsList(context.Context, domain.UnitFilter) ([]domain.Unit, error) {
	return f.units, f.listErr
}

type fakeSubs struct {
	byUnit   map[domain.UnitID][]domain.Submission
	batchErr error
	reads    int
}

func (f *fakeSubs) CreateSubmission(_ context.Context, s domain.Submission) (domain.Submission, error) {
	return s, nil
}
func (f *fakeSubs) SubmissionByID(context.Context, domain.SubmissionID) (domain.Submission, error) {
	return domain.Submission{}, domain.ErrNotFound
}
func (f *fakeSubs) ReplaceFile(context.Context, domain.SubmissionID, domain.FileMeta, string) (domain.Submission, error) {
	return domain.Submission{}, domain.ErrNotFound
}
func (f *fakeSubs) SetStatus(context.Context, domain.SubmissionID, string) (domain.Submission, error) {
	return domain.Submission{}, domain.ErrNotFound
}
func (f *fakeSubs) DeleteSubmission(context.Context, domain.SubmissionID) error { return nil }
func (f *fakeSubs) SubmissionsByUnit(_ context.Context, id domain.UnitID) ([]domain.Submission, error) {
	f.reads++
	return f.byUnit[id], nil
}
func (f *fakeSubs) SubmissionsByUnits(_ context.Context, ids []domain.UnitID) (map[domain.UnitID][]domain.Submission, error) {
	f.reads++
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	out := make(map[domain.UnitID][]domain.Submission, len(ids))
	for _, id := range ids {
		out[id] = f.byUnit[id]
	}
	return out, nil
}

type fakeCache struct {
	kv  map[string][]byte
	ver int64
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) { return f.kv[key], nil }
func (f *fakeCache) Set(_ context.Context, key string, val []byte, _ int) error {
	f.kv[key] = val
	return nil
}
func (f *fakeCache) Del(_ context.Context, keys ...string) error { return nil }
func (f *fakeCache) Incr(_ context.Context, _ string) (int64, error) {
	f.ver++
	return f.ver, nil
}
func (f *fakeCache) Ping(context.Context) error { return nil }
func (f *fakeCache) Close() {}

func sub(unitID domain.UnitID, cat, status string, age time.Duration) domain.Submission {
	return domain.Submission{
		ID:          uuid.New(),
		UnitID:      unitID,
		RawCategory: cat,
		RawStatus:   status,
		StorageKey:  unitID.String() + "/" + cat + "/doc.pdf",
		UploadedAt:  time.Now().UTC().Add(-age),
	}
}

func approvedSet(unitID domain.UnitID) []domain.Submission {
	out := make([]domain.Submission, 0, 4)
	for _, c := range verify.RequiredCategories() {
		out = append(out, sub(unitID, string(c), "disetujui", time.Hour))
	}
	return out
}

func newHandler(units *fakeUnits, subs *fakeSubs, cache *fakeCache) *Handler {
	return &Handler{
		Log:   log.New(io.Discard, "", 0),
		Units: units,
		Subs:  subs,
		Cache: cache,
		Norm:  verify.NewNormalizer(verify.DefaultAliasTable()),
		TTL:   60,
	}
}

func adminReq(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	a := domain.Account{ID: uuid.New(), Role: domain.RoleAdmin}
	return req.WithContext(domain.WithAccount(req.Context(), a))
}

func TestDashboardCounters(t *testing.T) {
	complete := domain.Unit{ID: uuid.New(), Name: "A"}
	incomplete := domain.Unit{ID: uuid.New(), Name: "B"}
	empty := domain.Unit{ID: uuid.New(), Name: "C"}

	units := &fakeUnits{units: []domain.Unit{complete, incomplete, empty}}
	subs := &fakeSubs{byUnit: map[domain.UnitID][]domain.Submission{
		complete.ID: approvedSet(complete.ID),
		incomplete.ID: {
			sub(incomplete.ID, "sk_posbankum", "menunggu", time.Hour),
			sub(incomplete.ID, "sarpras", "pending", time.Hour),
		},
	}}
	h := newHandler(units, subs, &fakeCache{kv: map[string][]byte{}})

	rec := httptest.NewRecorder()
	h.Dashboard(rec, adminReq(http.MethodGet, "/api/reports/dashboard"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var env struct {
		Data verify.FleetStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, 3, env.Data.UnitsEvaluated)
	assert.Equal(t, 2, env.Data.PendingDocs)
	assert.Equal(t, 2, env.Data.IncompleteUnits)
	assert.False(t, env.Data.Indeterminate)
}

func TestDashboardIndeterminateOnPartialSnapshot(t *testing.T) {
	u := domain.Unit{ID: uuid.New(), Name: "A"}
	units := &fakeUnits{units: []domain.Unit{u}}
	subs := &fakeSubs{batchErr: domain.ErrStoreUnavailable}
	h := newHandler(units, subs, &fakeCache{kv: map[string][]byte{}})

	rec := httptest.NewRecorder()
	h.Dashboard(rec, adminReq(http.MethodGet, "/api/reports/dashboard"))
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data verify.FleetStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Data.Indeterminate)
	assert.Zero(t, env.Data.UnitsEvaluated)
	assert.NotEmpty(t, env.Data.Reason)
}

func TestFleetTabFilters(t *testing.T) {
	complete := domain.Unit{ID: uuid.New(), Name: "A"}
	incomplete := domain.Unit{ID: uuid.New(), Name: "B"}
	units := &fakeUnits{units: []domain.Unit{complete, incomplete}}
	subs := &fakeSubs{byUnit: map[domain.UnitID][]domain.Submission{
		complete.ID: approvedSet(complete.ID),
	}}
	h := newHandler(units, subs, &fakeCache{kv: map[string][]byte{}})

	rec := httptest.NewRecorder()
	h.Fleet(rec, adminReq(http.MethodGet, "/api/reports/fleet?tab=complete"))
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data verify.FleetReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Data.Reports, 1)
	assert.Equal(t, complete.ID, env.Data.Reports[0].UnitID)
	// stats still describe the whole fleet
	assert.Equal(t, 2, env.Data.Stats.UnitsEvaluated)

	rec = httptest.NewRecorder()
	h.Fleet(rec, adminReq(http.MethodGet, "/api/reports/fleet?tab=bogus"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnitReportCached(t *testing.T) {
	u := domain.Unit{ID: uuid.New(), Name: "A"}
	units := &fakeUnits{units: []domain.Unit{u}}
	subs := &fakeSubs{byUnit: map[domain.UnitID][]domain.Submission{u.ID: approvedSet(u.ID)}}
	cache := &fakeCache{kv: map[string][]byte{}}
	h := newHandler(units, subs, cache)

	get := func() *httptest.ResponseRecorder {
		req := adminReq(http.MethodGet, "/api/reports/units/"+u.ID.String())
		req.SetPathValue("id", u.ID.String())
		rec := httptest.NewRecorder()
		h.Unit(rec, req)
		return rec
	}

	first := get()
	require.Equal(t, http.StatusOK, first.Code)
	readsAfterFirst := subs.reads

	second := get()
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, readsAfterFirst, subs.reads, "second read must come from cache")
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestUnitReportForbiddenForForeignOwner(t *testing.T) {
	u := domain.Unit{ID: uuid.New(), Name: "A"}
	other := uuid.New()
	units := &fakeUnits{units: []domain.Unit{u}}
	h := newHandler(units, &fakeSubs{}, &fakeCache{kv: map[string][]byte{}})

	req := httptest.NewRequest(http.MethodGet, "/api/reports/units/"+u.ID.String(), nil)
	req.SetPathValue("id", u.ID.String())
	acc := domain.Account{ID: uuid.New(), Role: domain.RoleOwner, UnitID: &other}
	req = req.WithContext(domain.WithAccount(req.Context(), acc))

	rec := httptest.NewRecorder()
	h.Unit(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
