package sqlc

import (
	"context"
	"math/rand"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func randomID() int64 {
	return rand.Int63n(1_000_000_000) + 1
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}

// Helper function to create a random shopcart entry for testing
func createRandomShopcart(t *testing.T) (Shopcart, UpsertShopcartParams) {
	t.Helper()

	arg := UpsertShopcartParams{
		UserID:    randomID(),
		ProductID: randomID(),
		Quantity:  int32(rand.Intn(10) + 1),
		Price:     decimalToNumeric(decimal.NewFromFloat(12.50)),
	}

	entry, err := testQueries.UpsertShopcart(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, entry)

	require.Equal(t, arg.UserID, entry.UserID)
	require.Equal(t, arg.ProductID, entry.ProductID)
	require.Equal(t, arg.Quantity, entry.Quantity)

	t.Cleanup(func() {
		testQueries.DeleteShopcart(context.Background(), DeleteShopcartParams{
			UserID:    entry.UserID,
			ProductID: entry.ProductID,
		})
	})

	return entry, arg
}

func TestUpsertShopcart(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestUpsertShopcart")
	}
	createRandomShopcart(t)
}

func TestUpsertShopcartMergesQuantity(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestUpsertShopcartMergesQuantity")
	}
	created, arg := createRandomShopcart(t)

	arg.Quantity = 3
	merged, err := testQueries.UpsertShopcart(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, created.Quantity+3, merged.Quantity)
	// 合併時價格維持既有值
	require.Equal(t, created.Price, merged.Price)
}

func TestGetShopcart(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestGetShopcart")
	}
	created, _ := createRandomShopcart(t)

	retrieved, err := testQueries.GetShopcart(context.Background(), GetShopcartParams{
		UserID:    created.UserID,
		ProductID: created.ProductID,
	})
	require.NoError(t, err)
	require.Equal(t, created.UserID, retrieved.UserID)
	require.Equal(t, created.ProductID, retrieved.ProductID)
	require.Equal(t, created.Quantity, retrieved.Quantity)
}

func TestGetShopcartNotFound(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestGetShopcartNotFound")
	}
	_, err := testQueries.GetShopcart(context.Background(), GetShopcartParams{
		UserID:    randomID(),
		ProductID: randomID(),
	})
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUpdateShopcart(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestUpdateShopcart")
	}
	created, _ := createRandomShopcart(t)

	updated, err := testQueries.UpdateShopcart(context.Background(), UpdateShopcartParams{
		UserID:    created.UserID,
		ProductID: created.ProductID,
		Quantity:  7,
		Price:     decimalToNumeric(decimal.NewFromFloat(3.99)),
	})
	require.NoError(t, err)
	require.Equal(t, int32(7), updated.Quantity)
}

func TestUpdateShopcartNotFound(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestUpdateShopcartNotFound")
	}
	_, err := testQueries.UpdateShopcart(context.Background(), UpdateShopcartParams{
		UserID:    randomID(),
		ProductID: randomID(),
		Quantity:  1,
		Price:     decimalToNumeric(decimal.NewFromFloat(1.00)),
	})
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestDeleteShopcartIdempotent(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestDeleteShopcartIdempotent")
	}
	created, _ := createRandomShopcart(t)

	arg := DeleteShopcartParams{
		UserID:    created.UserID,
		ProductID: created.ProductID,
	}
	require.NoError(t, testQueries.DeleteShopcart(context.Background(), arg))
	// 再刪一次也不會錯
	require.NoError(t, testQueries.DeleteShopcart(context.Background(), arg))
}

func TestListUsersWithTotalAtLeast(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestListUsersWithTotalAtLeast")
	}
	userID := randomID()
	arg := UpsertShopcartParams{
		UserID:    userID,
		ProductID: randomID(),
		Quantity:  2,
		Price:     decimalToNumeric(decimal.NewFromFloat(6.50)),
	}
	_, err := testQueries.UpsertShopcart(context.Background(), arg)
	require.NoError(t, err)
	t.Cleanup(func() {
		testQueries.DeleteShopcartsByUser(context.Background(), userID)
	})

	// total = 13.00, 邊界值應包含
	users, err := testQueries.ListUsersWithTotalAtLeast(context.Background(), decimalToNumeric(decimal.NewFromFloat(13.00)))
	require.NoError(t, err)
	require.Contains(t, users, userID)

	users, err = testQueries.ListUsersWithTotalAtLeast(context.Background(), decimalToNumeric(decimal.NewFromFloat(13.01)))
	require.NoError(t, err)
	require.NotContains(t, users, userID)
}
