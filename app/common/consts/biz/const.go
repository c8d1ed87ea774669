package biz

// 상담 가능한 금융상품 유형. 사용자 노출 문자열이자 세션 상태의 product_type 값.
const (
	ProductSaving   = "적금"
	ProductDeposit  = "예금"
	ProductPension  = "연금저축"
	ProductMortgage = "주담대"
	ProductJeonse   = "전세자금대출"
	ProductCredit   = "신용대출"
)

// ProductTypes preserves the presentation order of the six product types.
var ProductTypes = []string{
	ProductSaving,
	ProductDeposit,
	ProductPension,
	ProductMortgage,
	ProductJeonse,
	ProductCredit,
}

// Eligibility answers as stored in session state.
const (
	AnswerYes     = "yes"
	AnswerNo      = "no"
	AnswerUnknown = "unknown"
)

const (
	SessionKeyPrefix = "advisor:session:"
)

func IsProductType(s string) bool {
	for _, t := range ProductTypes {
		if t == s {
			return true
		}
	}
	return false
}

// IsLoan reports whether the product type is one of the three loan families,
// where a lower rate is better for the user.
func IsLoan(productType string) bool {
	switch productType {
	case ProductMortgage, ProductJeonse, ProductCredit:
		return true
	default:
		return false
	}
}

func IsAnswer(s string) bool {
	switch s {
	case AnswerYes, AnswerNo, AnswerUnknown:
		return true
	default:
		return false
	}
}
