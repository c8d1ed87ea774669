package finlife

import (
	"bytes"
	"strconv"
)

// FlexFloat decodes registry numerics that arrive as numbers, quoted numbers
// or empty strings. Empty and unparsable values decode to zero.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt is FlexFloat's integer counterpart.
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*i = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			*i = FlexInt(f)
			return nil
		}
		*i = 0
		return nil
	}
	*i = FlexInt(v)
	return nil
}

// BaseProduct is one row of the registry's baseList.
type BaseProduct struct {
	FinPrdtCd string `json:"fin_prdt_cd"`
	KorCoNm   string `json:"kor_co_nm"`
	FinPrdtNm string `json:"fin_prdt_nm"`
	JoinWay   string `json:"join_way"`
	SpclCnd   string `json:"spcl_cnd"`
}

// Option is one row of the registry's optionList. The field set differs per
// product kind; absent fields simply decode to zero values.
type Option struct {
	FinPrdtCd string `json:"fin_prdt_cd"`

	// savings / deposits
	SaveTrm        FlexInt   `json:"save_trm"`
	IntrRate       FlexFloat `json:"intr_rate"`
	IntrRate2      FlexFloat `json:"intr_rate2"`
	IntrRateTypeNm string    `json:"intr_rate_type_nm"`

	// annuity savings
	PnsnKindNm    string    `json:"pnsn_kind_nm"`
	PrdtTypeNm    string    `json:"prdt_type_nm"`
	AvgPrftRate   FlexFloat `json:"avg_prft_rate"`
	BtrmPrftRate1 FlexFloat `json:"btrm_prft_rate_1"`

	// loans
	MrtgTypNm      string    `json:"mrtg_typ_nm"`
	RpayTypeNm     string    `json:"rpay_type_nm"`
	LendRateTypeNm string    `json:"lend_rate_type_nm"`
	LendRateMin    FlexFloat `json:"lend_rate_min"`
	LendRateMax    FlexFloat `json:"lend_rate_max"`
}

// Payload is the decoded body of one product-search call.
type Payload struct {
	Result struct {
		BaseList   []BaseProduct `json:"baseList"`
		OptionList []Option      `json:"optionList"`
	} `json:"result"`
}
