package repository

import (
	"context"
	"encoding/json"
	"fmt"
)

// collection decodes and encodes one named collection of T.
type collection[T any] struct {
	store RecordStore
	name  string
}

func (c collection[T]) all(ctx context.Context) ([]T, error) {
	raws, err := c.store.ReadAll(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.name, err)
	}
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s record %d: %w", c.name, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (c collection[T]) replace(ctx context.Context, items []T) error {
	raws := make([]json.RawMessage, 0, len(items))
	for i, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode %s record %d: %w", c.name, i, err)
		}
		raws = append(raws, b)
	}
	if err := c.store.WriteAll(ctx, c.name, raws); err != nil {
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	return nil
}

func (c collection[T]) append(ctx context.Context, item T) error {
	items, err := c.all(ctx)
	if err != nil {
		return err
	}
	return c.replace(ctx, append(items, item))
}
