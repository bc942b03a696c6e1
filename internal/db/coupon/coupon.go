package coupon

import (
	"context"
	"database/sql"
	"errors"
	c "storefront/internal/core/domain/common"
	"storefront/internal/core/domain/coupon"
	e "storefront/internal/core/domain/errors"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const couponColumns = `id, code, discount_percent, expires_at, created_at`

type PgxCouponRepository struct {
	db *pgxpool.Pool
}

func NewPgxRepository(db *pgxpool.Pool) *PgxCouponRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxCouponRepository{db: db}
}

func (r *PgxCouponRepository) GetAll(ctx context.Context) ([]coupon.Coupon, error) {
	rows, err := r.db.Query(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coupons := make([]coupon.Coupon, 0)
	for rows.Next() {
		cp, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, cp)
	}
	return coupons, rows.Err()
}

func (r *PgxCouponRepository) GetByID(ctx context.Context, id coupon.ID) (cp coupon.Coupon, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+couponColumns+` FROM coupons WHERE id = $1`, int64(id))
	cp, err = scanCoupon(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return cp, coupon.ErrCouponDoesNotExist
	}
	return cp, err
}

func (r *PgxCouponRepository) Create(ctx context.Context, input coupon.CreateCouponInput) (cp coupon.Coupon, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO coupons (code, discount_percent, expires_at, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+couponColumns,
		string(input.Code),
		input.DiscountPercent,
		encodeOptionalTime(input.ExpiresAt),
		input.CreatedAt,
	)
	return scanCoupon(row)
}

func (r *PgxCouponRepository) Update(ctx context.Context, input coupon.UpdateCouponInput) (cp coupon.Coupon, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE coupons SET code = $2, discount_percent = $3, expires_at = $4
		 WHERE id = $1
		 RETURNING `+couponColumns,
		int64(input.ID),
		string(input.Code),
		input.DiscountPercent,
		encodeOptionalTime(input.ExpiresAt),
	)
	cp, err = scanCoupon(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return cp, coupon.ErrCouponDoesNotExist
	}
	return cp, err
}

func (r *PgxCouponRepository) Delete(ctx context.Context, id coupon.ID) error {
	commandTag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return coupon.ErrCouponDoesNotExist
	}
	return nil
}

func encodeOptionalTime(at c.Optional[time.Time]) sql.NullTime {
	return sql.NullTime{Time: at.Value, Valid: at.IsPresent}
}

func scanCoupon(row pgx.Row) (cp coupon.Coupon, err error) {
	var id int64
	var code string
	var discountPercent uint32
	var expiresAt sql.NullTime
	var createdAt time.Time

	err = row.Scan(&id, &code, &discountPercent, &expiresAt, &createdAt)
	if err != nil {
		return cp, err
	}
	return coupon.Coupon{
		ID:              coupon.ID(id),
		Code:            coupon.Code(code),
		DiscountPercent: discountPercent,
		ExpiresAt:       c.NewOptional(expiresAt.Time, expiresAt.Valid),
		CreatedAt:       createdAt,
	}, nil
}
