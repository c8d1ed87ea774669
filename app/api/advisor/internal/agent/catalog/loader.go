package catalog

import (
	"context"

	"FinNavi/app/dal/bank"
)

// Loader reads the active catalog from the store on demand. The catalog is
// append-only and refreshed independently of a turn, so loading fresh each
// turn picks up curator additions without any cache invalidation.
type Loader struct {
	model bank.ConditionCatalogModel
}

func NewLoader(model bank.ConditionCatalogModel) *Loader {
	return &Loader{model: model}
}

func (l *Loader) Load(ctx context.Context) (Catalog, error) {
	rows, err := l.model.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return FromRows(rows), nil
}
