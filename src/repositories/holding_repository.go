package repositories

import (
	"context"
	"errors"

	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const holdingColumns = `id, user_id, coin_id, units, bought_price, current_price, created_at, updated_at`

type HoldingRepository interface {
	GetAllByUserID(ctx context.Context, userID int64) ([]models.Holding, error)
	Upsert(ctx context.Context, h *models.Holding) (*models.Holding, error)
	UpdateByID(ctx context.Context, userID, holdingID int64, units, boughtPrice *float64) (*models.Holding, error)
	UpdateCurrentPrice(ctx context.Context, holdingID int64, price float64) error
	DeleteByID(ctx context.Context, userID, holdingID int64) error
}

type holdingRepo struct {
	db *pgxpool.Pool
}

func NewHoldingRepository(db *pgxpool.Pool) HoldingRepository {
	return &holdingRepo{db: db}
}

func scanHolding(row pgx.Row) (*models.Holding, error) {
	var h models.Holding
	err := row.Scan(&h.ID, &h.UserID, &h.CoinID, &h.Units, &h.BoughtPrice, &h.CurrentPrice, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *holdingRepo) GetAllByUserID(ctx context.Context, userID int64) ([]models.Holding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+holdingColumns+`
		FROM holdings
		WHERE user_id = $1
		ORDER BY id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.UserID, &h.CoinID, &h.Units, &h.BoughtPrice, &h.CurrentPrice, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// Upsert inserts a holding or merges it into the existing (user_id, coin_id)
// row. The unit increment is computed by the database so two concurrent adds
// for the same pair never lose an update. The cost basis is overwritten, not
// averaged, and the price snapshot is refreshed.
func (r *holdingRepo) Upsert(ctx context.Context, h *models.Holding) (*models.Holding, error) {
	query := `
		INSERT INTO holdings (user_id, coin_id, units, bought_price, current_price)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, coin_id) DO UPDATE SET
			units = holdings.units + EXCLUDED.units,
			bought_price = EXCLUDED.bought_price,
			current_price = EXCLUDED.current_price,
			updated_at = now()
		RETURNING ` + holdingColumns

	return scanHolding(r.db.QueryRow(ctx, query,
		h.UserID, h.CoinID, h.Units, h.BoughtPrice, h.CurrentPrice,
	))
}

// UpdateByID applies a partial edit scoped to the owner. Nil fields keep their
// stored values and current_price is never touched here.
func (r *holdingRepo) UpdateByID(ctx context.Context, userID, holdingID int64, units, boughtPrice *float64) (*models.Holding, error) {
	query := `
		UPDATE holdings
		SET units = COALESCE($1, units),
			bought_price = COALESCE($2, bought_price),
			updated_at = now()
		WHERE id = $3 AND user_id = $4
		RETURNING ` + holdingColumns

	h, err := scanHolding(r.db.QueryRow(ctx, query, units, boughtPrice, holdingID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (r *holdingRepo) UpdateCurrentPrice(ctx context.Context, holdingID int64, price float64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE holdings SET current_price = $1, updated_at = now() WHERE id = $2`,
		price, holdingID)
	return err
}

func (r *holdingRepo) DeleteByID(ctx context.Context, userID, holdingID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM holdings WHERE id = $1 AND user_id = $2`,
		holdingID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
