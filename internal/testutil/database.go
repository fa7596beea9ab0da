package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the catalog_test database on localhost:3306 and skips
// the test when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/catalog_test?parseTime=true&loc=UTC"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the mirror tables and closes db.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	for _, table := range []string{"StoreAssortment", "CatalogProduct"} {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the mirror schema.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createCatalogProductTable := `
	CREATE TABLE IF NOT EXISTS CatalogProduct (
		productNumber VARCHAR(32) NOT NULL PRIMARY KEY,
		productId VARCHAR(32) NOT NULL,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(100),
		country VARCHAR(100),
		price DECIMAL(10,2) NOT NULL,
		alcoholPercentage DECIMAL(5,2) NOT NULL,
		volume DECIMAL(10,2) NOT NULL,
		sellStartDate DATE NOT NULL,
		payload JSON NOT NULL,
		syncedAt DATETIME NOT NULL,
		INDEX idx_product_id (productId)
	)`

	createStoreAssortmentTable := `
	CREATE TABLE IF NOT EXISTS StoreAssortment (
		siteId VARCHAR(16) NOT NULL,
		productNumber VARCHAR(32) NOT NULL,
		productId VARCHAR(32) NOT NULL,
		PRIMARY KEY (siteId, productNumber)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"CatalogProduct", createCatalogProductTable},
		{"StoreAssortment", createStoreAssortmentTable},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
