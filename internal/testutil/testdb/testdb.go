// Package testdb abre bancos SQLite em memória com o schema da aplicação para testes.
package testdb

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/vendas-api/internal/infrastructure/persistence/postgres"
)

// TB é o subconjunto de testing.TB usado aqui; também satisfeito por GinkgoT()
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// Open cria um banco SQLite em memória já migrado.
// Cada chamada devolve um banco isolado, fechado ao final do teste.
func Open(t TB) *gorm.DB {
	t.Helper()

	cfg := postgres.NewGormConfig("")
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	db, err := gorm.Open(sqlite.Open(":memory:"), cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// ":memory:" é por conexão: uma única conexão mantém o mesmo banco
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
