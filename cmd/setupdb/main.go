package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/advancedmkt/leads-api/internal/config"
	"github.com/advancedmkt/leads-api/internal/infra/database"
)

// Bootstrap único do schema. Idempotente: rodar de novo não quebra nada.
func main() {
	godotenv.Load()
	cfg := config.Load()

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Banco indisponível: %v", err)
	}
	defer db.Close()

	tables, err := database.Bootstrap(db)
	if err != nil {
		log.Fatalf("❌ Erro no bootstrap: %v", err)
	}

	log.Println("✅ Tabela de leads criada")
	log.Printf("Tabelas no catálogo: %v", tables)
}
