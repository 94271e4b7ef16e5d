package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/makelifebetter/storefront-service/internal/domain/checkout"
	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
	"github.com/makelifebetter/storefront-service/internal/domain/order"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/monitoring"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(conn *Connection) *OrderRepository {
	return &OrderRepository{
		db: conn.GetDB(),
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	address, err := json.Marshal(o.Address)
	if err != nil {
		return err
	}
	shipping, err := json.Marshal(o.Shipping)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (id, user_id, user_email, items, address, shipping,
			payment_method, installments, subtotal, shipping_cost, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = monitoring.InstrumentExec(ctx, r.db, "INSERT", "orders", query,
		o.ID, o.UserID, o.UserEmail, items, address, shipping,
		string(o.Payment.Method), o.Payment.Installments,
		o.Subtotal, o.ShippingCost, o.Total, string(o.Status), o.CreatedAt,
	)
	return err
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	query := orderSelect + ` WHERE id = $1`

	row := monitoring.InstrumentQueryRow(ctx, r.db, "SELECT", "orders", query, id)
	o, err := scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}

	return o, nil
}

func (r *OrderRepository) GetByUserID(ctx context.Context, userID string) ([]order.Order, error) {
	query := orderSelect + ` WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := monitoring.InstrumentQuery(ctx, r.db, "SELECT", "orders", query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]order.Order, error) {
	query := orderSelect + ` ORDER BY created_at DESC`

	rows, err := monitoring.InstrumentQuery(ctx, r.db, "SELECT", "orders", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	if !status.Valid() {
		return domainErrors.ErrInvalidOrderStatus
	}

	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := monitoring.InstrumentExec(ctx, r.db, "UPDATE", "orders", query, id, string(status))
	if err != nil {
		return err
	}

	return requireRow(result, domainErrors.ErrOrderNotFound)
}

const orderSelect = `
	SELECT id, user_id, user_email, items, address, shipping,
		payment_method, installments, subtotal, shipping_cost, total, status, created_at, updated_at
	FROM orders`

func scanOrder(row rowScanner) (*order.Order, error) {
	var o order.Order
	var items, address, shipping []byte
	var method, status string
	var updatedAt sql.NullTime

	err := row.Scan(&o.ID, &o.UserID, &o.UserEmail, &items, &address, &shipping,
		&method, &o.Payment.Installments, &o.Subtotal, &o.ShippingCost, &o.Total,
		&status, &o.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(address, &o.Address); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(shipping, &o.Shipping); err != nil {
		return nil, err
	}

	o.Payment.Method = checkout.PaymentMethod(method)
	o.Status = order.Status(status)
	if updatedAt.Valid {
		t := updatedAt.Time
		o.UpdatedAt = &t
	}

	return &o, nil
}

func collectOrders(rows *sql.Rows) ([]order.Order, error) {
	orders := make([]order.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}
