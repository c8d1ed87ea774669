package bank

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ SavingOptionsModel = (*customSavingOptionsModel)(nil)

type (
	// SavingOptionsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customSavingOptionsModel.
	SavingOptionsModel interface {
		savingOptionsModel
		DeleteByProductType(ctx context.Context, dbType string) error
	}

	customSavingOptionsModel struct {
		*defaultSavingOptionsModel
	}
)

// NewSavingOptionsModel returns a model for the database table.
func NewSavingOptionsModel(conn sqlx.SqlConn) SavingOptionsModel {
	return &customSavingOptionsModel{
		defaultSavingOptionsModel: newSavingOptionsModel(conn),
	}
}

// DeleteByProductType clears option rows for one product type ahead of a
// registry sync, which re-inserts the full option list.
func (m *customSavingOptionsModel) DeleteByProductType(ctx context.Context, dbType string) error {
	query := fmt.Sprintf("delete from %s where `fin_prdt_cd` in (select `fin_prdt_cd` from `products_base` where `product_type` = ?)", m.table)
	_, err := m.conn.ExecCtx(ctx, query, dbType)
	return err
}
