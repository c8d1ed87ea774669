package bank

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ProductsBaseModel = (*customProductsBaseModel)(nil)

type (
	// ProductsBaseModel is an interface to be customized, add more methods here,
	// and implement the added methods in customProductsBaseModel.
	ProductsBaseModel interface {
		productsBaseModel
		TopByRate(ctx context.Context, productType string, limit int64) ([]*CandidateRow, error)
		TopByConditionLength(ctx context.Context, productType string, limit int64) ([]*CandidateRow, error)
		SearchPage(ctx context.Context, productType, q, sort string, limit, offset int64) ([]*CandidateRow, error)
		CountByType(ctx context.Context, productType, q string) (int64, error)
		UpsertRegistryRow(ctx context.Context, data *ProductsBase) error
		DeactivateUnseen(ctx context.Context, productType, cutoff string) error
		ActiveConditionTexts(ctx context.Context, limit int64) ([]string, error)
	}

	customProductsBaseModel struct {
		*defaultProductsBaseModel
	}

	// CandidateRow is a product joined with its representative rate, the shape
	// the candidate pool builder and the product list endpoint consume.
	CandidateRow struct {
		FinPrdtCd string  `db:"fin_prdt_cd"`
		KorCoNm   string  `db:"kor_co_nm"`
		FinPrdtNm string  `db:"fin_prdt_nm"`
		Rate      float64 `db:"rate"`
		SpclCnd   string  `db:"spcl_cnd"`
	}
)

// NewProductsBaseModel returns a model for the database table.
func NewProductsBaseModel(conn sqlx.SqlConn) ProductsBaseModel {
	return &customProductsBaseModel{
		defaultProductsBaseModel: newProductsBaseModel(conn),
	}
}

func (m *customProductsBaseModel) TopByRate(ctx context.Context, productType string, limit int64) ([]*CandidateRow, error) {
	dbType := DBType(productType)
	joinTable, rateExpr, orderDir := optionFamily(dbType)
	query := fmt.Sprintf(`select b.fin_prdt_cd, b.kor_co_nm, b.fin_prdt_nm, coalesce(%s, 0) as rate, coalesce(b.spcl_cnd, '') as spcl_cnd
from %s b join %s o on b.fin_prdt_cd = o.fin_prdt_cd
where b.product_type = ? and b.is_active = 1
order by %s %s limit ?`, rateExpr, m.table, joinTable, rateExpr, orderDir)

	var resp []*CandidateRow
	err := m.conn.QueryRowsCtx(ctx, &resp, query, dbType, limit)
	switch err {
	case nil, ErrNotFound:
		return resp, nil
	default:
		return nil, err
	}
}

func (m *customProductsBaseModel) TopByConditionLength(ctx context.Context, productType string, limit int64) ([]*CandidateRow, error) {
	dbType := DBType(productType)
	joinTable, rateExpr, orderDir := optionFamily(dbType)
	query := fmt.Sprintf(`select b.fin_prdt_cd, b.kor_co_nm, b.fin_prdt_nm, coalesce(%s, 0) as rate, coalesce(b.spcl_cnd, '') as spcl_cnd
from %s b join %s o on b.fin_prdt_cd = o.fin_prdt_cd
where b.product_type = ? and b.is_active = 1
order by length(coalesce(b.spcl_cnd, '')) desc, %s %s limit ?`, rateExpr, m.table, joinTable, rateExpr, orderDir)

	var resp []*CandidateRow
	err := m.conn.QueryRowsCtx(ctx, &resp, query, dbType, limit)
	switch err {
	case nil, ErrNotFound:
		return resp, nil
	default:
		return nil, err
	}
}

// SearchPage lists products for the catalog browse endpoint. One row per
// product, aggregating the representative rate across option rows.
func (m *customProductsBaseModel) SearchPage(ctx context.Context, productType, q, sort string, limit, offset int64) ([]*CandidateRow, error) {
	dbType := DBType(productType)
	joinTable, rateExpr, orderDir := optionFamily(dbType)

	agg := "max"
	if orderDir == "ASC" {
		agg = "min"
	}
	switch sort {
	case "rate_asc":
		orderDir = "ASC"
	case "rate_desc":
		orderDir = "DESC"
	}

	where, args := m.searchWhere(dbType, q)
	query := fmt.Sprintf(`select b.fin_prdt_cd, b.kor_co_nm, b.fin_prdt_nm, coalesce(%s(%s), 0) as rate, coalesce(b.spcl_cnd, '') as spcl_cnd
from %s b join %s o on b.fin_prdt_cd = o.fin_prdt_cd
%s
group by b.fin_prdt_cd, b.kor_co_nm, b.fin_prdt_nm, b.spcl_cnd
order by rate %s limit ? offset ?`, agg, rateExpr, m.table, joinTable, where, orderDir)
	args = append(args, limit, offset)

	var resp []*CandidateRow
	err := m.conn.QueryRowsCtx(ctx, &resp, query, args...)
	switch err {
	case nil, ErrNotFound:
		return resp, nil
	default:
		return nil, err
	}
}

func (m *customProductsBaseModel) CountByType(ctx context.Context, productType, q string) (int64, error) {
	where, args := m.searchWhere(DBType(productType), q)
	query := fmt.Sprintf("select count(*) from %s b %s", m.table, where)
	var total int64
	if err := m.conn.QueryRowCtx(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (m *customProductsBaseModel) searchWhere(dbType, q string) (string, []any) {
	where := "where b.product_type = ? and b.is_active = 1"
	args := []any{dbType}
	if strings.TrimSpace(q) != "" {
		where += " and (b.kor_co_nm like ? or b.fin_prdt_nm like ?)"
		like := "%" + strings.TrimSpace(q) + "%"
		args = append(args, like, like)
	}
	return where, args
}

// UpsertRegistryRow writes one product from a registry sync. Reappearing
// products are reactivated.
func (m *customProductsBaseModel) UpsertRegistryRow(ctx context.Context, data *ProductsBase) error {
	query := fmt.Sprintf(`insert into %s (%s) values (?, ?, ?, ?, ?, ?, ?, 1, null, ?)
on duplicate key update
product_type = values(product_type), kor_co_nm = values(kor_co_nm), fin_prdt_nm = values(fin_prdt_nm),
join_way = values(join_way), spcl_cnd = values(spcl_cnd), last_updated = values(last_updated),
is_active = 1, ended_at = null, last_seen_at = values(last_seen_at)`, m.table, productsBaseRowsExpectAutoSet)
	_, err := m.conn.ExecCtx(ctx, query, data.FinPrdtCd, data.ProductType, data.KorCoNm, data.FinPrdtNm,
		data.JoinWay, data.SpclCnd, data.LastUpdated, data.LastSeenAt)
	return err
}

// DeactivateUnseen retires products of a type that did not appear in the sync
// run that started at cutoff.
func (m *customProductsBaseModel) DeactivateUnseen(ctx context.Context, productType, cutoff string) error {
	query := fmt.Sprintf(`update %s set is_active = 0, ended_at = coalesce(ended_at, ?)
where product_type = ? and (last_seen_at is null or last_seen_at < ?)`, m.table)
	_, err := m.conn.ExecCtx(ctx, query, cutoff, productType, cutoff)
	return err
}

// ActiveConditionTexts feeds the catalog curator: the longest special
// condition texts across all active products.
func (m *customProductsBaseModel) ActiveConditionTexts(ctx context.Context, limit int64) ([]string, error) {
	query := fmt.Sprintf(`select spcl_cnd from %s
where is_active = 1 and spcl_cnd is not null and spcl_cnd != ''
order by length(spcl_cnd) desc limit ?`, m.table)
	var resp []string
	err := m.conn.QueryRowsCtx(ctx, &resp, query, limit)
	switch err {
	case nil, ErrNotFound:
		return resp, nil
	default:
		return nil, err
	}
}
