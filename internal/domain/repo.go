package domain

import (
	"context"
)

// Store is the key/value "local storage" shared by the preload gate and the
// visitor preferences.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type OrderRepository interface {
	SaveOrder(ctx context.Context, order *Order) error
	RecentOrders(ctx context.Context, limit int) ([]Order, error)
}

type Notifier interface {
	Notify(n Notification)
}
