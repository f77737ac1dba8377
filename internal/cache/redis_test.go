package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	c := NewRedisCache("localhost:0", "laundry")
	defer c.Close()

	assert.Equal(t, "laundry:stats:admin", c.GenerateKey("stats", "admin"))
}

func TestDeleteWithoutKeys(t *testing.T) {
	c := NewRedisCache("localhost:0", "laundry")
	defer c.Close()

	require.NoError(t, c.Delete(context.Background()))
}

func TestUnreachableServer(t *testing.T) {
	c := NewRedisCache("127.0.0.1:1", "laundry")
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))
}
