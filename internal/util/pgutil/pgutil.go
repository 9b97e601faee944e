package pgutil

import (
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// DecimalToPgNumericV5 將 decimal.Decimal 轉換為 pgtype.Numeric
func DecimalToPgNumericV5(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}

// PgNumericToDecimalV5 將 pgtype.Numeric 轉換為 decimal.Decimal
// NULL 或 NaN 一律視為 0
func PgNumericToDecimalV5(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(new(big.Int).Set(n.Int), n.Exp)
}
