package pgutil

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "12.00", "0.50", "1.115", "-3.25", "99999999.99"} {
		d := decimal.RequireFromString(s)
		got := PgNumericToDecimalV5(DecimalToPgNumericV5(d))
		require.True(t, got.Equal(d), "round trip of %s got %s", s, got)
	}
}

func TestPgNumericToDecimalV5Null(t *testing.T) {
	require.True(t, PgNumericToDecimalV5(pgtype.Numeric{}).IsZero())
	require.True(t, PgNumericToDecimalV5(pgtype.Numeric{NaN: true, Valid: true}).IsZero())
}
