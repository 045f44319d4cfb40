package events

import "context"

type ChangeEventRepository interface {
	Append(ctx context.Context, e *ChangeEvent) error
	List(ctx context.Context, limit, offset int) ([]*ChangeEvent, int, error)
}

type InsightHistoryRepository interface {
	Insert(ctx context.Context, h *InsightHistory) error
	List(ctx context.Context, limit, offset int) ([]*InsightHistory, int, error)
}
