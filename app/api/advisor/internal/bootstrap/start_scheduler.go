package bootstrap

import (
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"

	"FinNavi/app/api/advisor/internal/mq"
	"FinNavi/app/api/advisor/internal/svc"
)

// StartScheduler enqueues the periodic catalog sync tasks: a daily full sync
// plus a monthly run kept separate so its cadence can diverge later.
func StartScheduler(sc *svc.ServiceContext) func() {
	addr := sc.Config.AsynqConf.Addr
	if addr == "" {
		addr = sc.Config.RedisConf.Host
	}
	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{Addr: addr}, nil)

	register := func(cronspec, mode string) {
		payload, err := json.Marshal(mq.CatalogSyncPayload{Mode: mode})
		if err != nil {
			logx.Errorf("marshal %s sync payload: %v", mode, err)
			return
		}
		task := asynq.NewTask(mq.TaskCatalogSync, payload)
		if _, err := scheduler.Register(cronspec, task); err != nil {
			logx.Errorf("register %s sync schedule: %v", mode, err)
		}
	}
	register(sc.Config.Sync.DailyCron, "daily")
	register(sc.Config.Sync.MonthlyCron, "monthly")

	go func() {
		if err := scheduler.Run(); err != nil {
			panic(err)
		}
	}()
	return func() {
		scheduler.Shutdown()
	}
}
