// Package memstore 提供 db.IStore 的記憶體實作, 供測試與本地開發使用
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/RoyceAzure/lab/shopcart/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcart/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcart/internal/util/pgutil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var _ db.IStore = (*MemStore)(nil)

type key struct {
	userID    int64
	productID int64
}

type MemStore struct {
	mu    sync.Mutex
	rows  map[key]sqlc.Shopcart
	order []key // 保留插入順序, 模擬資料表掃描
}

func NewMemStore() *MemStore {
	return &MemStore{
		rows: make(map[key]sqlc.Shopcart),
	}
}

func (m *MemStore) UpsertShopcart(ctx context.Context, arg sqlc.UpsertShopcartParams) (sqlc.Shopcart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key{arg.UserID, arg.ProductID}
	if row, ok := m.rows[k]; ok {
		row.Quantity += arg.Quantity
		m.rows[k] = row
		return row, nil
	}

	row := sqlc.Shopcart{
		UserID:    arg.UserID,
		ProductID: arg.ProductID,
		Quantity:  arg.Quantity,
		Price:     arg.Price,
	}
	m.rows[k] = row
	m.order = append(m.order, k)
	return row, nil
}

func (m *MemStore) GetShopcart(ctx context.Context, arg sqlc.GetShopcartParams) (sqlc.Shopcart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[key{arg.UserID, arg.ProductID}]
	if !ok {
		return sqlc.Shopcart{}, pgx.ErrNoRows
	}
	return row, nil
}

func (m *MemStore) ListShopcarts(ctx context.Context) ([]sqlc.Shopcart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var items []sqlc.Shopcart
	for _, k := range m.order {
		if row, ok := m.rows[k]; ok {
			items = append(items, row)
		}
	}
	return items, nil
}

func (m *MemStore) ListShopcartsByUser(ctx context.Context, userID int64) ([]sqlc.Shopcart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var items []sqlc.Shopcart
	for _, k := range m.order {
		if row, ok := m.rows[k]; ok && row.UserID == userID {
			items = append(items, row)
		}
	}
	return items, nil
}

func (m *MemStore) ListShopcartUsers(ctx context.Context) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[int64]bool)
	var items []int64
	for _, k := range m.order {
		row, ok := m.rows[k]
		if !ok || seen[row.UserID] {
			continue
		}
		seen[row.UserID] = true
		items = append(items, row.UserID)
	}
	return items, nil
}

func (m *MemStore) ListUsersWithTotalAtLeast(ctx context.Context, amount pgtype.Numeric) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	threshold := pgutil.PgNumericToDecimalV5(amount)
	totals := make(map[int64]decimal.Decimal)
	for _, row := range m.rows {
		price := pgutil.PgNumericToDecimalV5(row.Price)
		line := price.Mul(decimal.NewFromInt32(row.Quantity))
		totals[row.UserID] = totals[row.UserID].Add(line)
	}

	var items []int64
	for userID, total := range totals {
		if total.GreaterThanOrEqual(threshold) {
			items = append(items, userID)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items, nil
}

func (m *MemStore) UpdateShopcart(ctx context.Context, arg sqlc.UpdateShopcartParams) (sqlc.Shopcart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key{arg.UserID, arg.ProductID}
	row, ok := m.rows[k]
	if !ok {
		return sqlc.Shopcart{}, pgx.ErrNoRows
	}
	row.Quantity = arg.Quantity
	row.Price = arg.Price
	m.rows[k] = row
	return row, nil
}

func (m *MemStore) DeleteShopcart(ctx context.Context, arg sqlc.DeleteShopcartParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key{arg.UserID, arg.ProductID}
	if _, ok := m.rows[k]; ok {
		delete(m.rows, k)
		m.pruneOrder()
	}
	return nil
}

func (m *MemStore) DeleteShopcartsByUser(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k := range m.rows {
		if k.userID == userID {
			delete(m.rows, k)
		}
	}
	m.pruneOrder()
	return nil
}

// pruneOrder 移除已刪除資料列的順序紀錄, 避免重新插入時產生重複
func (m *MemStore) pruneOrder() {
	kept := m.order[:0]
	for _, k := range m.order {
		if _, ok := m.rows[k]; ok {
			kept = append(kept, k)
		}
	}
	m.order = kept
}

func (m *MemStore) DeleteAllShopcarts(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = make(map[key]sqlc.Shopcart)
	m.order = nil
	return nil
}
