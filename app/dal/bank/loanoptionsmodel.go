package bank

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ LoanOptionsModel = (*customLoanOptionsModel)(nil)

type (
	// LoanOptionsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customLoanOptionsModel.
	LoanOptionsModel interface {
		loanOptionsModel
		DeleteByProductType(ctx context.Context, dbType string) error
	}

	customLoanOptionsModel struct {
		*defaultLoanOptionsModel
	}
)

// NewLoanOptionsModel returns a model for the database table.
func NewLoanOptionsModel(conn sqlx.SqlConn) LoanOptionsModel {
	return &customLoanOptionsModel{
		defaultLoanOptionsModel: newLoanOptionsModel(conn),
	}
}

func (m *customLoanOptionsModel) DeleteByProductType(ctx context.Context, dbType string) error {
	query := fmt.Sprintf("delete from %s where `fin_prdt_cd` in (select `fin_prdt_cd` from `products_base` where `product_type` = ?)", m.table)
	_, err := m.conn.ExecCtx(ctx, query, dbType)
	return err
}
