package category

import (
	"context"
	"errors"
	"storefront/internal/core/domain/category"
	e "storefront/internal/core/domain/errors"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const categoryColumns = `id, name, description, created_at`

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func NewPgxRepository(db *pgxpool.Pool) *PgxCategoryRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxCategoryRepository{db: db}
}

func (r *PgxCategoryRepository) GetAll(ctx context.Context) ([]category.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]category.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PgxCategoryRepository) GetByID(ctx context.Context, id category.ID) (c category.Category, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, int64(id))
	c, err = scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return c, category.ErrCategoryDoesNotExist
	}
	return c, err
}

func (r *PgxCategoryRepository) Create(
	ctx context.Context,
	input category.CreateCategoryInput,
) (c category.Category, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO categories (name, description, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING `+categoryColumns,
		input.Name,
		input.Description,
		input.CreatedAt,
	)
	return scanCategory(row)
}

func (r *PgxCategoryRepository) Update(
	ctx context.Context,
	input category.UpdateCategoryInput,
) (c category.Category, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE categories SET name = $2, description = $3 WHERE id = $1 RETURNING `+categoryColumns,
		int64(input.ID),
		input.Name,
		input.Description,
	)
	c, err = scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return c, category.ErrCategoryDoesNotExist
	}
	return c, err
}

func (r *PgxCategoryRepository) Delete(ctx context.Context, id category.ID) error {
	commandTag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return category.ErrCategoryDoesNotExist
	}
	return nil
}

func scanCategory(row pgx.Row) (c category.Category, err error) {
	var id int64
	var name, description string
	var createdAt time.Time

	err = row.Scan(&id, &name, &description, &createdAt)
	if err != nil {
		return c, err
	}
	return category.Category{
		ID:          category.ID(id),
		Name:        name,
		Description: description,
		CreatedAt:   createdAt,
	}, nil
}
