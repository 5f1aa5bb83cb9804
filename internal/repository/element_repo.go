package repository

import (
	"context"

	"sigma/internal/models"
)

type ElementRepository struct {
	elements collection[models.Element]
}

func NewElementRepository(store RecordStore) *ElementRepository {
	return &ElementRepository{elements: collection[models.Element]{store: store, name: CollectionElements}}
}

var _ ElementRepo = (*ElementRepository)(nil)

func (r *ElementRepository) List(ctx context.Context) ([]models.Element, error) {
	return r.elements.all(ctx)
}

func (r *ElementRepository) ReplaceAll(ctx context.Context, elements []models.Element) error {
	return r.elements.replace(ctx, elements)
}

type ListRepository struct {
	lists collection[models.MonthlyList]
}

func NewListRepository(store RecordStore) *ListRepository {
	return &ListRepository{lists: collection[models.MonthlyList]{store: store, name: CollectionLists}}
}

var _ ListRepo = (*ListRepository)(nil)

func (r *ListRepository) List(ctx context.Context) ([]models.MonthlyList, error) {
	return r.lists.all(ctx)
}

func (r *ListRepository) ReplaceAll(ctx context.Context, lists []models.MonthlyList) error {
	return r.lists.replace(ctx, lists)
}
