package errno

const (
	StatusOK = 10000
)

const (
	InternalError = 50000 + iota
	InvalidParam
	InvalidProductType
	SessionNotFound
	SessionStoreError
	CatalogStoreError
)

const (
	LLMUnavailable = 60000 + iota
	LLMRateLimited
)
