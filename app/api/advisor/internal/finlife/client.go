package finlife

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpc"

	"FinNavi/app/common/consts/biz"
)

// Kind is one registry product search endpoint.
type Kind string

const (
	KindSaving   Kind = "saving"
	KindDeposit  Kind = "deposit"
	KindAnnuity  Kind = "annuity"
	KindMortgage Kind = "mortgage"
	KindRent     Kind = "rent"
	KindCredit   Kind = "credit"
)

// Kinds lists every endpoint in sync order.
var Kinds = []Kind{KindSaving, KindDeposit, KindAnnuity, KindMortgage, KindRent, KindCredit}

const defaultBaseURL = "https://finlife.fss.or.kr/finlifeapi"

var endpoints = map[Kind]string{
	KindSaving:   "/savingProductsSearch.json",
	KindDeposit:  "/depositProductsSearch.json",
	KindAnnuity:  "/annuitySavingProductsSearch.json",
	KindMortgage: "/mortgageLoanProductsSearch.json",
	KindRent:     "/rentHouseLoanProductsSearch.json",
	KindCredit:   "/creditLoanProductsSearch.json",
}

// DBType maps a registry kind onto the product_type value stored with each
// product row. Savings-like kinds use their english db value; loan kinds use
// the user-facing Korean name directly.
func (k Kind) DBType() string {
	switch k {
	case KindSaving:
		return "saving"
	case KindDeposit:
		return "deposit"
	case KindAnnuity:
		return "annuity"
	case KindMortgage:
		return biz.ProductMortgage
	case KindRent:
		return biz.ProductJeonse
	case KindCredit:
		return biz.ProductCredit
	default:
		return string(k)
	}
}

// IsLoan reports whether the kind's options live in the loan option table.
func (k Kind) IsLoan() bool {
	return k == KindMortgage || k == KindRent || k == KindCredit
}

// Client calls the financial supervisory service's product registry.
type Client struct {
	baseURL     string
	auth        string
	topFinGrpNo string
}

func NewClient(auth, topFinGrpNo string) *Client {
	if topFinGrpNo == "" {
		topFinGrpNo = "020000"
	}
	return &Client{
		baseURL:     defaultBaseURL,
		auth:        auth,
		topFinGrpNo: topFinGrpNo,
	}
}

type searchRequest struct {
	Auth        string `form:"auth"`
	TopFinGrpNo string `form:"topFinGrpNo"`
	PageNo      int    `form:"pageNo"`
}

// Fetch retrieves one kind's full base and option lists.
func (c *Client) Fetch(ctx context.Context, kind Kind) (*Payload, error) {
	path, ok := endpoints[kind]
	if !ok {
		return nil, fmt.Errorf("finlife: unknown kind %q", kind)
	}

	resp, err := httpc.Do(ctx, http.MethodGet, c.baseURL+path, searchRequest{
		Auth:        c.auth,
		TopFinGrpNo: c.topFinGrpNo,
		PageNo:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("finlife: %s request: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("finlife: %s http %d", kind, resp.StatusCode)
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("finlife: %s decode: %w", kind, err)
	}
	return &payload, nil
}
