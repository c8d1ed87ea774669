package svc

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"FinNavi/app/api/advisor/internal/agent/catalog"
	"FinNavi/app/api/advisor/internal/agent/dialog"
	"FinNavi/app/api/advisor/internal/agent/nlu"
	"FinNavi/app/api/advisor/internal/agent/pool"
	"FinNavi/app/api/advisor/internal/agent/score"
	"FinNavi/app/api/advisor/internal/config"
	"FinNavi/app/api/advisor/internal/finlife"
	"FinNavi/app/api/advisor/internal/mq"
	"FinNavi/app/api/advisor/internal/session"
	"FinNavi/app/api/advisor/internal/syncer"
	"FinNavi/app/common/snowflake"
	"FinNavi/app/dal/bank"
)

type ServiceContext struct {
	Config config.Config

	ProductsModel bank.ProductsBaseModel
	CatalogModel  bank.ConditionCatalogModel

	Sessions      session.Store
	SessionLocker *session.Locker

	ChatModel    *ark.ChatModel
	Classifier   *nlu.TypeClassifier
	Orchestrator *dialog.Orchestrator

	Syncer *syncer.Syncer
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)
	snowflake.SetNodeID(c.SnowflakeNode)

	conn := sqlx.MustNewConn(c.MysqlConf)
	rds := redis.MustNewRedis(c.RedisConf)

	productsModel := bank.NewProductsBaseModel(conn)
	savingOpts := bank.NewSavingOptionsModel(conn)
	annuityOpts := bank.NewAnnuityOptionsModel(conn)
	loanOpts := bank.NewLoanOptionsModel(conn)
	runsModel := bank.NewSyncRunsModel(conn)
	catalogModel := bank.NewConditionCatalogModel(conn)

	sc := &ServiceContext{
		Config:        c,
		ProductsModel: productsModel,
		CatalogModel:  catalogModel,
		Sessions:      session.NewRedisStore(rds, c.Advisor.SessionTTLSeconds),
		SessionLocker: session.NewLocker(),
	}

	cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
		BaseURL: c.ChatModel.BaseUrl,
		APIKey:  c.ChatModel.APIKey,
		Model:   c.ChatModel.Model,
	})
	if err != nil {
		logx.Errorw("init ark chat model failed", logx.Field("err", err))
	} else {
		sc.ChatModel = cm
		logx.Infow("ark chat model initialized")
	}

	if sc.ChatModel != nil {
		classifier, err := nlu.NewTypeClassifier(context.Background(), logx.WithContext(context.Background()), sc.ChatModel)
		if err != nil {
			logx.Errorw("init type classifier failed", logx.Field("err", err))
		} else {
			sc.Classifier = classifier
		}

		parser, err := nlu.NewFactParser(sc.ChatModel)
		if err != nil {
			logx.Errorw("init fact parser failed", logx.Field("err", err))
		} else {
			builder := pool.NewBuilder(pool.NewBankStore(productsModel),
				c.Advisor.RatePoolSize, c.Advisor.SpclPoolSize, c.Advisor.PerProviderCap)
			engine := score.NewEngine(score.Config{
				YesBonus:            c.Advisor.YesBonus,
				NoPenalty:           c.Advisor.NoPenalty,
				ComplexityPenalty:   c.Advisor.ComplexityPenalty,
				ComplexityThreshold: c.Advisor.ComplexityThreshold,
				TopK:                c.Advisor.TopK,
			})
			sc.Orchestrator = dialog.NewOrchestrator(parser, builder,
				catalog.NewLoader(catalogModel), engine, c.Advisor.SlotAskCap)
		}
	}

	var curator *syncer.Curator
	if sc.ChatModel != nil {
		curator = syncer.NewCurator(sc.ChatModel, productsModel, catalogModel)
	}
	sc.Syncer = syncer.NewSyncer(syncer.Options{
		Client:      finlife.NewClient(c.Finlife.AuthKey, c.Finlife.TopFinGrpNo),
		Products:    productsModel,
		SavingOpts:  savingOpts,
		AnnuityOpts: annuityOpts,
		LoanOpts:    loanOpts,
		Runs:        runsModel,
		Catalog:     catalogModel,
		Curator:     curator,
		Publisher:   mq.NewCatalogEventProducer(c.KafkaConf.Broker, c.KafkaConf.CatalogSyncedTopic),
	})

	return sc
}
