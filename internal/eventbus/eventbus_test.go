package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type ping struct{ N int }
type pong struct{ N int }

func TestPublishSubscribe(t *testing.T) {
	Use(New())
	defer Use(nil)

	var pings []ping
	var pongs []pong
	Subscribe(func(ctx context.Context, e ping) { pings = append(pings, e) })
	Subscribe(func(ctx context.Context, e pong) { pongs = append(pongs, e) })

	Publish(context.Background(), ping{N: 1})
	Publish(context.Background(), ping{N: 2})
	Publish(context.Background(), pong{N: 3})

	require.Equal(t, []ping{{N: 1}, {N: 2}}, pings)
	require.Equal(t, []pong{{N: 3}}, pongs)
}

func TestPublishWithoutBus(t *testing.T) {
	Use(nil)

	// No bus installed: publishing is a no-op, not a panic.
	Publish(context.Background(), ping{N: 1})
}

func TestMultipleSubscribers(t *testing.T) {
	Use(New())
	defer Use(nil)

	var order []int
	Subscribe(func(ctx context.Context, e ping) { order = append(order, 1) })
	Subscribe(func(ctx context.Context, e ping) { order = append(order, 2) })

	Publish(context.Background(), ping{})
	require.Equal(t, []int{1, 2}, order)
}
