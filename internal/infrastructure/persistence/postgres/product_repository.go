package postgres

import (
	"context"
	"database/sql"

	"github.com/makelifebetter/storefront-service/internal/domain/catalog"
	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/monitoring"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(conn *Connection) *ProductRepository {
	return &ProductRepository{
		db: conn.GetDB(),
	}
}

func (r *ProductRepository) List(ctx context.Context, activeOnly bool) ([]catalog.Product, error) {
	query := `
		SELECT id, name, description, price, promotional_price, image_url, category, active, created_at, updated_at
		FROM products
		ORDER BY created_at DESC
	`
	if activeOnly {
		query = `
			SELECT id, name, description, price, promotional_price, image_url, category, active, created_at, updated_at
			FROM products
			WHERE active = TRUE
			ORDER BY created_at DESC
		`
	}

	rows, err := monitoring.InstrumentQuery(ctx, r.db, "SELECT", "products", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]catalog.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	query := `
		SELECT id, name, description, price, promotional_price, image_url, category, active, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	row := monitoring.InstrumentQueryRow(ctx, r.db, "SELECT", "products", query, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, promotional_price, image_url, category, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := monitoring.InstrumentExec(ctx, r.db, "INSERT", "products", query,
		p.ID, p.Name, p.Description, p.Price, nullFloat(p.PromotionalPrice),
		nullString(p.ImageURL), nullString(p.Category), p.Active, p.CreatedAt,
	)
	return err
}

func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, promotional_price = $5,
		    image_url = $6, category = $7, active = $8, updated_at = NOW()
		WHERE id = $1
	`

	result, err := monitoring.InstrumentExec(ctx, r.db, "UPDATE", "products", query,
		p.ID, p.Name, p.Description, p.Price, nullFloat(p.PromotionalPrice),
		nullString(p.ImageURL), nullString(p.Category), p.Active,
	)
	if err != nil {
		return err
	}

	return requireRow(result, domainErrors.ErrProductNotFound)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := monitoring.InstrumentExec(ctx, r.db, "DELETE", "products", query, id)
	if err != nil {
		return err
	}

	return requireRow(result, domainErrors.ErrProductNotFound)
}

func (r *ProductRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE products SET active = $2, updated_at = NOW() WHERE id = $1`

	result, err := monitoring.InstrumentExec(ctx, r.db, "UPDATE", "products", query, id, active)
	if err != nil {
		return err
	}

	return requireRow(result, domainErrors.ErrProductNotFound)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*catalog.Product, error) {
	var p catalog.Product
	var promo sql.NullFloat64
	var imageURL, category sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &promo,
		&imageURL, &category, &p.Active, &p.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	p.PromotionalPrice = promo.Float64
	p.ImageURL = imageURL.String
	p.Category = category.String
	if updatedAt.Valid {
		p.UpdatedAt = updatedAt.Time
	}

	return &p, nil
}

func nullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: v > 0}
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func requireRow(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
