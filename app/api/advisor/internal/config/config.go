package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	LogConf logx.LogConf

	MysqlConf sqlx.SqlConf
	RedisConf redis.RedisConf

	ChatModel ModelConf

	KafkaConf       KafkaConf
	AsynqConf       AsynqRedisConf
	AsynqServerConf AsynqServerConf

	Finlife FinlifeConf
	Sync    SyncConf
	Advisor AdvisorConf

	SnowflakeNode int64
}

type ModelConf struct {
	BaseUrl string
	APIKey  string
	Model   string
}

type KafkaConf struct {
	Broker             []string `json:",optional"`
	CatalogSyncedTopic string   `json:",optional"`
}

type AsynqRedisConf struct {
	Addr string `json:",optional"`
}

type AsynqServerConf struct {
	Concurrency int            `json:",default=4"`
	Queues      map[string]int `json:",optional"`
}

type FinlifeConf struct {
	AuthKey     string
	TopFinGrpNo string `json:",default=020000"`
}

type SyncConf struct {
	Enabled     bool   `json:",default=true"`
	DailyCron   string `json:",default=0 4 * * *"`
	MonthlyCron string `json:",default=0 5 1 * *"`
}

// AdvisorConf carries the dialogue and ranking tuning knobs. The scoring
// constants are empirical; treat them as configuration, not doctrine.
type AdvisorConf struct {
	TopK                int     `json:",default=3"`
	RatePoolSize        int64   `json:",default=250"`
	SpclPoolSize        int64   `json:",default=250"`
	PerProviderCap      int     `json:",default=3"`
	SlotAskCap          int     `json:",default=2"`
	YesBonus            float64 `json:",default=0.15"`
	NoPenalty           float64 `json:",default=0.1"`
	ComplexityPenalty   float64 `json:",default=0.1"`
	ComplexityThreshold int     `json:",default=4"`
	SessionTTLSeconds   int     `json:",default=3600"`
}
