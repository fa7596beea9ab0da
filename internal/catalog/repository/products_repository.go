package repository

import (
	"context"
	"database/sql"
	"fmt"

	"systemet/internal/domain"
	"systemet/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

// ReplaceCatalog upserts every product and replaces the store assortment
// table in one transaction.
func (r *MySQLRepository) ReplaceCatalog(ctx context.Context, products []domain.CatalogProduct, links []domain.StoreAssortment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	// Rollback after Commit is a no-op.
	defer tx.Rollback()

	upsert, err := tx.PrepareContext(ctx, `
		INSERT INTO CatalogProduct (productNumber, productId, name, category, country, price,
		                            alcoholPercentage, volume, sellStartDate, payload, syncedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			productId = VALUES(productId),
			name = VALUES(name),
			category = VALUES(category),
			country = VALUES(country),
			price = VALUES(price),
			alcoholPercentage = VALUES(alcoholPercentage),
			volume = VALUES(volume),
			sellStartDate = VALUES(sellStartDate),
			payload = VALUES(payload),
			syncedAt = VALUES(syncedAt)
	`)
	if err != nil {
		return fmt.Errorf("preparing product upsert: %w", err)
	}
	defer upsert.Close()

	for _, p := range products {
		_, err := upsert.ExecContext(ctx,
			p.ProductNumber, p.ProductID, p.Name, p.Category, p.Country, p.Price,
			p.AlcoholPercentage, p.Volume, p.SellStartDate, p.Payload, p.SyncedAt,
		)
		if err != nil {
			return fmt.Errorf("upserting product %s: %w", p.ProductNumber, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM StoreAssortment`); err != nil {
		return fmt.Errorf("clearing store assortment: %w", err)
	}

	insert, err := tx.PrepareContext(ctx, `
		INSERT IGNORE INTO StoreAssortment (siteId, productNumber, productId) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing assortment insert: %w", err)
	}
	defer insert.Close()

	for _, l := range links {
		if _, err := insert.ExecContext(ctx, l.SiteID, l.ProductNumber, l.ProductID); err != nil {
			return fmt.Errorf("inserting assortment %s/%s: %w", l.SiteID, l.ProductNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog: %w", err)
	}
	return nil
}

func (r *MySQLRepository) FindByProductNumber(ctx context.Context, productNumber string) (*domain.CatalogProduct, error) {
	query := `
		SELECT productNumber, productId, name, category, country, price,
		       alcoholPercentage, volume, sellStartDate, payload, syncedAt
		FROM CatalogProduct
		WHERE productNumber = ?
	`

	var p domain.CatalogProduct
	err := r.db.QueryRowContext(ctx, query, productNumber).Scan(
		&p.ProductNumber, &p.ProductID, &p.Name, &p.Category, &p.Country, &p.Price,
		&p.AlcoholPercentage, &p.Volume, &p.SellStartDate, &p.Payload, &p.SyncedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %s not found", productNumber))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by number: %w", err)
	}

	return &p, nil
}

func (r *MySQLRepository) FindStoreAssortment(ctx context.Context, siteID string) ([]domain.StoreAssortment, error) {
	query := `
		SELECT siteId, productNumber, productId
		FROM StoreAssortment
		WHERE siteId = ?
		ORDER BY productNumber
	`

	rows, err := r.db.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("querying store assortment: %w", err)
	}
	defer rows.Close()

	var links []domain.StoreAssortment
	for rows.Next() {
		var l domain.StoreAssortment
		if err := rows.Scan(&l.SiteID, &l.ProductNumber, &l.ProductID); err != nil {
			return nil, fmt.Errorf("scanning assortment row: %w", err)
		}
		links = append(links, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assortment rows: %w", err)
	}

	return links, nil
}
