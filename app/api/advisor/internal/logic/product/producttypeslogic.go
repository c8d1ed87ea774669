// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package product

import (
	"context"

	"FinNavi/app/api/advisor/internal/svc"
	"FinNavi/app/api/advisor/internal/types"
	"FinNavi/app/common/consts/biz"

	"github.com/zeromicro/go-zero/core/logx"
)

type ProductTypesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewProductTypesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ProductTypesLogic {
	return &ProductTypesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ProductTypesLogic) ProductTypes() (*types.ProductTypesResponse, error) {
	return &types.ProductTypesResponse{
		ProductTypes: biz.ProductTypes,
	}, nil
}
