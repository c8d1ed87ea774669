package bank

import (
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"FinNavi/app/common/consts/biz"
)

var ErrNotFound = sqlx.ErrNotFound

// DBType maps a user-facing product type onto the value stored in the
// product_type column. Savings-like types use the registry's english keys;
// the three loan types are stored as-is.
func DBType(productType string) string {
	switch productType {
	case biz.ProductSaving:
		return "saving"
	case biz.ProductDeposit:
		return "deposit"
	case biz.ProductPension:
		return "annuity"
	default:
		return productType
	}
}

// optionFamily returns the option table join and rate expression for a stored
// product type. Loans order ascending: the lowest offered rate is the
// representative one for a borrower.
func optionFamily(dbType string) (joinTable, rateExpr, orderDir string) {
	switch dbType {
	case "saving", "deposit":
		return "options_savings", "o.intr_rate2", "DESC"
	case "annuity":
		return "options_annuity", "o.avg_prft_rate", "DESC"
	default:
		return "options_loan", "o.lend_rate_min", "ASC"
	}
}
