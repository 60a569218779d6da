package store

import (
	"database/sql"

	_ "github.com/lib/pq"

	models "github.com/swastikaa0/GroceryWebDevelopment-sub001/model"
)

// PostgresSource reads the product catalog out of Postgres. It only ever
// selects; catalog contents are managed by migrations, not by this process.
type PostgresSource struct {
	DB *sql.DB
}

func NewPostgresSource(dsn string) (*PostgresSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &PostgresSource{DB: db}, nil
}

func (s *PostgresSource) Close() error { return s.DB.Close() }

// FetchProducts returns all products in their listing order.
func (s *PostgresSource) FetchProducts() ([]models.Product, error) {
	rows, err := s.DB.Query(`SELECT id, name, category, price, original_price, rating, review_count, image FROM products ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Product{}
	for rows.Next() {
		var p models.Product
		var image sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.OriginalPrice, &p.Rating, &p.ReviewCount, &image); err != nil {
			return nil, err
		}
		if image.Valid {
			p.Image = image.String
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
