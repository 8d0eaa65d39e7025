package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

func (r *PGRepo) KabupatenList(ctx context.Context) ([]domain.Kabupaten, error) {
	q := r.qb().Select("id_kabupaten", "nama").
		From(r.table("kabupaten")).
		OrderBy("nama ASC")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("KabupatenList", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("KabupatenList query error after %s: %v", time.Since(start), err)
		return nil, mapPGError(err)
	}
	defer rows.Close()

	out := make([]domain.Kabupaten, 0, 16)
	for rows.Next() {
		var k domain.Kabupaten
		if err := rows.Scan(&k.ID, &k.Name); err != nil {
			return nil, mapPGError(err)
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPGError(err)
	}
	r.logger.Printf("KabupatenList ok in %s rows=%d", time.Since(start), len(out))
	return out, nil
}

func (r *PGRepo) KecamatanByKabupaten(ctx context.Context, kabupatenID string) ([]domain.Kecamatan, error) {
	q := r.qb().Select("id_kecamatan", "id_kabupaten", "nama").
		From(r.table("kecamatan")).
		Where(sq.Eq{"id_kabupaten": kabupatenID}).
		OrderBy("nama ASC")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("KecamatanByKabupaten", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("KecamatanByKabupaten query error after %s: %v", time.Since(start), err)
		return nil, mapPGError(err)
	}
	defer rows.Close()

	out := make([]domain.Kecamatan, 0, 16)
	for rows.Next() {
		var k domain.Kecamatan
		if err := rows.Scan(&k.ID, &k.KabupatenID, &k.Name); err != nil {
			return nil, mapPGError(err)
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPGError(err)
	}
	r.logger.Printf("KecamatanByKabupaten ok in %s rows=%d", time.Since(start), len(out))
	return out, nil
}
