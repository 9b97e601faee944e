package appcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestShutdownCompletes(t *testing.T) {
	app := &ApplicationContext{}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// 沒有連線要關閉時應立即結束, 不會卡在等待timeout
	start := time.Now()
	require.NoError(t, app.Shutdown(ctx))
	require.Less(t, time.Since(start), time.Second)
}
