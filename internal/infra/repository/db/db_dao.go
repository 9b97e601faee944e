package db

import (
	"github.com/RoyceAzure/lab/shopcart/internal/infra/repository/db/sqlc"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IStore 資料庫存取介面, 每個操作各自是一個 atomic commit
type IStore interface {
	sqlc.Querier
}

// Store 結構用來管理數據庫連接
type Store struct {
	*sqlc.Queries
	db *pgxpool.Pool
}

// NewStore 創建一個新的 Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db:      db,
		Queries: sqlc.New(db),
	}
}
