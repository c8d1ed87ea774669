// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package product

import (
	"net/http"

	"FinNavi/app/api/advisor/internal/logic/product"
	"FinNavi/app/api/advisor/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ProductTypesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := product.NewProductTypesLogic(r.Context(), svcCtx)
		resp, err := l.ProductTypes()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
