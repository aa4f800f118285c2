package broker

import "context"

type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
}
