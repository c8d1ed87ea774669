package mq

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"

	"FinNavi/app/api/advisor/internal/syncer"
)

func NewAsynqMux(s *syncer.Syncer) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskCatalogSync, newCatalogSyncHandler(s))
	return mux
}

func newCatalogSyncHandler(s *syncer.Syncer) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload CatalogSyncPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logx.WithContext(ctx).Errorf("catalog sync payload: %v", err)
			return err
		}
		if payload.Mode == "" {
			payload.Mode = "daily"
		}

		report, err := s.Run(ctx, payload.Mode)
		if err != nil {
			return err
		}
		logx.WithContext(ctx).Infow("catalog sync finished",
			logx.Field("mode", payload.Mode),
			logx.Field("status", report.Status),
			logx.Field("message", report.Message))
		return nil
	}
}
