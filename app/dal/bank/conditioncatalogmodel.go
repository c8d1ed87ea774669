package bank

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ConditionCatalogModel = (*customConditionCatalogModel)(nil)

type (
	// ConditionCatalogModel is an interface to be customized, add more methods here,
	// and implement the added methods in customConditionCatalogModel.
	ConditionCatalogModel interface {
		conditionCatalogModel
		ListActive(ctx context.Context) ([]*ConditionCatalog, error)
		ListAll(ctx context.Context) ([]*ConditionCatalog, error)
	}

	customConditionCatalogModel struct {
		*defaultConditionCatalogModel
	}
)

// NewConditionCatalogModel returns a model for the database table.
func NewConditionCatalogModel(conn sqlx.SqlConn) ConditionCatalogModel {
	return &customConditionCatalogModel{
		defaultConditionCatalogModel: newConditionCatalogModel(conn),
	}
}

// ListActive returns the active catalog in its iteration order: the catalog is
// append-only, so older (seed) entries come first and curator additions last.
func (m *customConditionCatalogModel) ListActive(ctx context.Context) ([]*ConditionCatalog, error) {
	query := fmt.Sprintf("select %s from %s where `is_active` = 1 order by `updated_at`, `key`", conditionCatalogRows, m.table)
	var resp []*ConditionCatalog
	err := m.conn.QueryRowsCtx(ctx, &resp, query)
	switch err {
	case nil, ErrNotFound:
		return resp, nil
	default:
		return nil, err
	}
}

// ListAll includes inactive entries; the curator needs the full key/pattern
// set for duplicate rejection.
func (m *customConditionCatalogModel) ListAll(ctx context.Context) ([]*ConditionCatalog, error) {
	query := fmt.Sprintf("select %s from %s order by `updated_at`, `key`", conditionCatalogRows, m.table)
	var resp []*ConditionCatalog
	err := m.conn.QueryRowsCtx(ctx, &resp, query)
	switch err {
	case nil, ErrNotFound:
		return resp, nil
	default:
		return nil, err
	}
}
