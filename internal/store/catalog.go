package store

import (
	"context"
	"fmt"

	"github.com/hanjihoon73/lawquiz/ent"
	"github.com/hanjihoon73/lawquiz/ent/catalogentry"
)

// catalogRepo implements CatalogRepo using the ent client.
type catalogRepo struct {
	client *ent.Client
}

func (r *catalogRepo) Entry(ctx context.Context, packID int) (*CatalogEntry, error) {
	row, err := r.client.CatalogEntry.Query().
		Where(catalogentry.QuizpackID(packID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query catalog entry for pack %d: %w", packID, err)
	}
	return &CatalogEntry{CatalogOrder: row.CatalogOrder, QuizpackID: row.QuizpackID}, nil
}

func (r *catalogRepo) EntryByOrder(ctx context.Context, order int) (*CatalogEntry, error) {
	row, err := r.client.CatalogEntry.Query().
		Where(catalogentry.CatalogOrder(order)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query catalog entry at order %d: %w", order, err)
	}
	return &CatalogEntry{CatalogOrder: row.CatalogOrder, QuizpackID: row.QuizpackID}, nil
}

func (r *catalogRepo) Size(ctx context.Context) (int, error) {
	n, err := r.client.CatalogEntry.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count catalog entries: %w", err)
	}
	return n, nil
}

func (r *catalogRepo) List(ctx context.Context) ([]CatalogEntry, error) {
	rows, err := r.client.CatalogEntry.Query().
		Order(ent.Asc(catalogentry.FieldCatalogOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog entries: %w", err)
	}

	out := make([]CatalogEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, CatalogEntry{CatalogOrder: row.CatalogOrder, QuizpackID: row.QuizpackID})
	}
	return out, nil
}
