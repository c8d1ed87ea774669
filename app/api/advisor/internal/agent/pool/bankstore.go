package pool

import (
	"context"

	"FinNavi/app/dal/bank"
)

var _ Store = (*bankStore)(nil)

// bankStore adapts the products dal model to the builder's Store interface.
type bankStore struct {
	products bank.ProductsBaseModel
}

func NewBankStore(products bank.ProductsBaseModel) Store {
	return &bankStore{products: products}
}

func (s *bankStore) TopByRate(ctx context.Context, productType string, limit int64) ([]Candidate, error) {
	rows, err := s.products.TopByRate(ctx, productType, limit)
	if err != nil {
		return nil, err
	}
	return fromRows(rows), nil
}

func (s *bankStore) TopByConditionLength(ctx context.Context, productType string, limit int64) ([]Candidate, error) {
	rows, err := s.products.TopByConditionLength(ctx, productType, limit)
	if err != nil {
		return nil, err
	}
	return fromRows(rows), nil
}

func fromRows(rows []*bank.CandidateRow) []Candidate {
	out := make([]Candidate, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		out = append(out, Candidate{
			ProductID:           r.FinPrdtCd,
			Provider:            r.KorCoNm,
			Name:                r.FinPrdtNm,
			Rate:                r.Rate,
			SpecialConditionRaw: r.SpclCnd,
		})
	}
	return out
}
