// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package product

import (
	"context"

	"FinNavi/app/api/advisor/internal/svc"
	"FinNavi/app/api/advisor/internal/types"
	"FinNavi/app/common/consts/biz"
	"FinNavi/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

const maxPageSize = 50

type ListProductsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListProductsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListProductsLogic {
	return &ListProductsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListProductsLogic) ListProducts(req *types.ListProductsRequest) (*types.ListProductsResponse, error) {
	if !biz.IsProductType(req.ProductType) {
		return nil, errors.New(int(errno.InvalidProductType), "invalid product_type")
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	rows, err := l.svcCtx.ProductsModel.SearchPage(l.ctx, req.ProductType, req.Q, req.Sort, pageSize, (page-1)*pageSize)
	if err != nil {
		l.Logger.Error("logic: search products failed: ", err)
		return nil, errors.New(int(errno.CatalogStoreError), "failed to list products")
	}

	total, err := l.svcCtx.ProductsModel.CountByType(l.ctx, req.ProductType, req.Q)
	if err != nil {
		l.Logger.Error("logic: count products failed: ", err)
		return nil, errors.New(int(errno.CatalogStoreError), "failed to count products")
	}

	items := make([]types.ProductItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, types.ProductItem{
			FinPrdtCd:           r.FinPrdtCd,
			Bank:                r.KorCoNm,
			Name:                r.FinPrdtNm,
			Rate:                r.Rate,
			SpecialConditionRaw: r.SpclCnd,
		})
	}

	return &types.ListProductsResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
