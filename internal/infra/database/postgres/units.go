package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

const unitColumns = "id_posbankum, nama, id_kabupaten, id_kecamatan, email_akun, created_at"

func (r *PGRepo) scanUnit(row pgx.Row) (domain.Unit, error) {
	var u domain.Unit
	err := row.Scan(&u.ID, &u.Name, &u.KabupatenID, &u.KecamatanID, &u.Email, &u.CreatedAt)
	return u, err
}

func (r *PGRepo) CreateUnit(ctx context.Context, u domain.Unit) (domain.Unit, error) {
	q := r.qb().Insert(r.table("posbankum")).
		Columns("nama", "id_kabupaten", "id_kecamatan", "email_akun").
		Values(u.Name, u.KabupatenID, u.KecamatanID, u.Email).
		Suffix("RETURNING " + unitColumns)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateUnit", sqlStr, args)

	start := time.Now()
	out, err := r.scanUnit(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("CreateUnit scan error after %s: %v", time.Since(start), err)
		return domain.Unit{}, mapPGError(err)
	}
	r.logger.Printf("CreateUnit ok in %s id=%s nama=%q", time.Since(start), out.ID, out.Name)
	return out, nil
}

func (r *PGRepo) UpdateUnit(ctx context.Context, u domain.Unit) (domain.Unit, error) {
	q := r.qb().Update(r.table("posbankum")).
		Set("nama", u.Name).
		Set("id_kabupaten", u.KabupatenID).
		Set("id_kecamatan", u.KecamatanID).
		Set("email_akun", u.Email).
		Where(sq.Eq{"id_posbankum": u.ID}).
		Suffix("RETURNING " + unitColumns)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UpdateUnit", sqlStr, args)

	start := time.Now()
	out, err := r.scanUnit(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("UpdateUnit scan error after %s: %v", time.Since(start), err)
		return domain.Unit{}, mapPGError(err)
	}
	r.logger.Printf("UpdateUnit ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}

func (r *PGRepo) DeleteUnit(ctx context.Context, id domain.UnitID) error {
	q := r.qb().Delete(r.table("posbankum")).Where(sq.Eq{"id_posbankum": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteUnit", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("DeleteUnit exec error after %s: %v", time.Since(start), err)
		return mapPGError(err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("DeleteUnit no rows affected in %s", time.Since(start))
		return fmt.Errorf("posbankum not found: %w", domain.ErrNotFound)
	}
	r.logger.Printf("DeleteUnit ok in %s", time.Since(start))
	return nil
}

func (r *PGRepo) UnitByID(ctx context.Context, id domain.UnitID) (domain.Unit, error) {
	q := r.qb().Select(unitColumns).
		From(r.table("posbankum")).
		Where(sq.Eq{"id_posbankum": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UnitByID", sqlStr, args)

	start := time.Now()
	out, err := r.scanUnit(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("UnitByID scan error after %s: %v", time.Since(start), err)
		return domain.Unit{}, mapPGError(err)
	}
	r.logger.Printf("UnitByID ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}

// UnitsList: admin search, name ILIKE plus optional two-level region filter.
func (r *PGRepo) UnitsList(ctx context.Context, f domain.UnitFilter) ([]domain.Unit, error) {
	sb := r.qb().Select(unitColumns).
		From(r.table("posbankum")).
		OrderBy("nama ASC")

	if f.Query != "" {
		sb = sb.Where(sq.ILike{"nama": "%" + f.Query + "%"})
	}
	if f.KabupatenID != "" {
		sb = sb.Where(sq.Eq{"id_kabupaten": f.KabupatenID})
	}
	if f.KecamatanID != "" {
		sb = sb.Where(sq.Eq{"id_kecamatan": f.KecamatanID})
	}
	if f.Limit > 0 {
		sb = sb.Limit(uint64(f.Limit))
	}

	sqlStr, args, _ := sb.ToSql()
	r.logSQL("UnitsList", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("UnitsList query error after %s: %v", time.Since(start), err)
		return nil, mapPGError(err)
	}
	defer rows.Close()

	out := make([]domain.Unit, 0, 32)
	for rows.Next() {
		u, err := r.scanUnit(rows)
		if err != nil {
			return nil, mapPGError(err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPGError(err)
	}
	r.logger.Printf("UnitsList ok in %s rows=%d", time.Since(start), len(out))
	return out, nil
}

// no rows -> not found, unique violation -> conflict,
// everything else -> store unavailable
func mapPGError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%v: %w", err, domain.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%v: %w", err, domain.ErrConflict)
	}
	return fmt.Errorf("%v: %w", err, domain.ErrStoreUnavailable)
}
