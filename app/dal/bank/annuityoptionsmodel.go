package bank

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ AnnuityOptionsModel = (*customAnnuityOptionsModel)(nil)

type (
	// AnnuityOptionsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customAnnuityOptionsModel.
	AnnuityOptionsModel interface {
		annuityOptionsModel
		DeleteByProductType(ctx context.Context, dbType string) error
	}

	customAnnuityOptionsModel struct {
		*defaultAnnuityOptionsModel
	}
)

// NewAnnuityOptionsModel returns a model for the database table.
func NewAnnuityOptionsModel(conn sqlx.SqlConn) AnnuityOptionsModel {
	return &customAnnuityOptionsModel{
		defaultAnnuityOptionsModel: newAnnuityOptionsModel(conn),
	}
}

func (m *customAnnuityOptionsModel) DeleteByProductType(ctx context.Context, dbType string) error {
	query := fmt.Sprintf("delete from %s where `fin_prdt_cd` in (select `fin_prdt_cd` from `products_base` where `product_type` = ?)", m.table)
	_, err := m.conn.ExecCtx(ctx, query, dbType)
	return err
}
