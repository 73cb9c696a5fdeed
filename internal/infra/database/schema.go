package database

import (
	"database/sql"
	"fmt"
)

// Statements idempotentes: seguro rodar mais de uma vez.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		company VARCHAR(255),
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL,
		budget VARCHAR(50),
		project_details TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Bootstrap cria o schema e confirma no catálogo que a tabela existe.
func Bootstrap(db *sql.DB) ([]string, error) {
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("falha ao criar schema: %w", err)
		}
	}

	rows, err := db.Query(`SELECT table_name FROM information_schema.tables WHERE table_name = 'leads'`)
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar catálogo: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}
