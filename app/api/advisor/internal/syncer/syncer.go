package syncer

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"FinNavi/app/api/advisor/internal/finlife"
	"FinNavi/app/dal/bank"
)

// CatalogSyncedEvent is published after a sync run for downstream consumers
// (analytics, cache warmers).
type CatalogSyncedEvent struct {
	Mode         string `json:"mode"`
	Status       string `json:"status"`
	Message      string `json:"message"`
	StartedAt    string `json:"started_at"`
	FinishedAt   string `json:"finished_at"`
	CatalogAdded int    `json:"catalog_added"`
}

// EventPublisher pushes sync completion events onto the message bus.
type EventPublisher interface {
	PublishCatalogSynced(ctx context.Context, evt CatalogSyncedEvent) error
}

// Report is the outcome of one sync run.
type Report struct {
	Status     string
	Message    string
	StartedAt  string
	FinishedAt string
}

const (
	StatusSuccess     = "success"
	StatusPartialFail = "partial_fail"
)

// Options wires the syncer's collaborators. Curator and Publisher are
// optional; a nil value disables that step.
type Options struct {
	Client      *finlife.Client
	Products    bank.ProductsBaseModel
	SavingOpts  bank.SavingOptionsModel
	AnnuityOpts bank.AnnuityOptionsModel
	LoanOpts    bank.LoanOptionsModel
	Runs        bank.SyncRunsModel
	Catalog     bank.ConditionCatalogModel
	Curator     *Curator
	Publisher   EventPublisher
}

// Syncer pulls the registry's six product searches into the catalog store:
// options are cleared and reinserted per type, base rows are upserted, and
// products missing from the feed are deactivated rather than deleted.
type Syncer struct {
	opts Options
}

func NewSyncer(opts Options) *Syncer {
	return &Syncer{opts: opts}
}

// Run executes one full sync in the given mode, recording the run in
// sync_runs. A failing kind degrades the run to partial_fail but never stops
// the remaining kinds.
func (s *Syncer) Run(ctx context.Context, mode string) (*Report, error) {
	logger := logx.WithContext(ctx)
	startedAt := time.Now().Format(time.DateTime)

	runID, err := s.opts.Runs.Begin(ctx, mode, startedAt)
	if err != nil {
		return nil, err
	}

	if err := EnsureSeeds(ctx, s.opts.Catalog); err != nil {
		logger.Errorf("ensure catalog seeds: %v", err)
	}

	okAll := true
	msgs := make([]string, 0, len(finlife.Kinds))
	for _, kind := range finlife.Kinds {
		msg, err := s.syncKind(ctx, kind)
		if err != nil {
			okAll = false
			logger.Errorf("sync %s: %v", kind, err)
			msgs = append(msgs, string(kind)+": "+err.Error())
			continue
		}
		msgs = append(msgs, msg)
	}

	status := StatusSuccess
	if !okAll {
		status = StatusPartialFail
	}
	finishedAt := time.Now().Format(time.DateTime)
	message := strings.Join(msgs, " | ")

	if err := s.opts.Runs.Finish(ctx, runID, finishedAt, status, message); err != nil {
		logger.Errorf("finish sync run %d: %v", runID, err)
	}

	catalogAdded := 0
	if s.opts.Curator != nil {
		added, skipped, err := s.opts.Curator.Refresh(ctx)
		if err != nil {
			logger.Errorf("catalog curation: %v", err)
		} else {
			catalogAdded = added
			logger.Infow("catalog curation done",
				logx.Field("added", added), logx.Field("skipped", skipped))
		}
	}

	if s.opts.Publisher != nil {
		evt := CatalogSyncedEvent{
			Mode:         mode,
			Status:       status,
			Message:      message,
			StartedAt:    startedAt,
			FinishedAt:   finishedAt,
			CatalogAdded: catalogAdded,
		}
		if err := s.opts.Publisher.PublishCatalogSynced(ctx, evt); err != nil {
			logger.Errorf("publish catalog synced event: %v", err)
		}
	}

	return &Report{
		Status:     status,
		Message:    message,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}, nil
}

func (s *Syncer) syncKind(ctx context.Context, kind finlife.Kind) (string, error) {
	payload, err := s.opts.Client.Fetch(ctx, kind)
	if err != nil {
		return "", err
	}

	dbType := kind.DBType()
	now := time.Now().Format(time.DateTime)

	if err := s.clearOptions(ctx, kind, dbType); err != nil {
		return "", err
	}

	for _, b := range payload.Result.BaseList {
		if b.FinPrdtCd == "" {
			continue
		}
		row := &bank.ProductsBase{
			FinPrdtCd:   b.FinPrdtCd,
			ProductType: dbType,
			KorCoNm:     b.KorCoNm,
			FinPrdtNm:   b.FinPrdtNm,
			JoinWay:     nullStr(b.JoinWay),
			SpclCnd:     nullStr(b.SpclCnd),
			LastUpdated: now,
			IsActive:    1,
			LastSeenAt:  nullStr(now),
		}
		if err := s.opts.Products.UpsertRegistryRow(ctx, row); err != nil {
			return "", err
		}
	}

	if err := s.insertOptions(ctx, kind, payload.Result.OptionList); err != nil {
		return "", err
	}

	if err := s.opts.Products.DeactivateUnseen(ctx, dbType, now); err != nil {
		return "", err
	}

	return string(kind) + ": ok base=" + strconv.Itoa(len(payload.Result.BaseList)) +
		" opt=" + strconv.Itoa(len(payload.Result.OptionList)), nil
}

func (s *Syncer) clearOptions(ctx context.Context, kind finlife.Kind, dbType string) error {
	switch {
	case kind == finlife.KindSaving || kind == finlife.KindDeposit:
		return s.opts.SavingOpts.DeleteByProductType(ctx, dbType)
	case kind == finlife.KindAnnuity:
		return s.opts.AnnuityOpts.DeleteByProductType(ctx, dbType)
	default:
		return s.opts.LoanOpts.DeleteByProductType(ctx, dbType)
	}
}

func (s *Syncer) insertOptions(ctx context.Context, kind finlife.Kind, options []finlife.Option) error {
	for _, o := range options {
		if o.FinPrdtCd == "" {
			continue
		}
		var err error
		switch {
		case kind == finlife.KindSaving || kind == finlife.KindDeposit:
			_, err = s.opts.SavingOpts.Insert(ctx, &bank.SavingOptions{
				FinPrdtCd:      o.FinPrdtCd,
				SaveTrm:        sql.NullInt64{Int64: int64(o.SaveTrm), Valid: true},
				IntrRate:       sql.NullFloat64{Float64: float64(o.IntrRate), Valid: true},
				IntrRate2:      sql.NullFloat64{Float64: float64(o.IntrRate2), Valid: true},
				IntrRateTypeNm: nullStr(o.IntrRateTypeNm),
			})
		case kind == finlife.KindAnnuity:
			_, err = s.opts.AnnuityOpts.Insert(ctx, &bank.AnnuityOptions{
				FinPrdtCd:     o.FinPrdtCd,
				PnsnKindNm:    nullStr(o.PnsnKindNm),
				PrdtTypeNm:    nullStr(o.PrdtTypeNm),
				AvgPrftRate:   sql.NullFloat64{Float64: float64(o.AvgPrftRate), Valid: true},
				BtrmPrftRate1: sql.NullFloat64{Float64: float64(o.BtrmPrftRate1), Valid: true},
			})
		default:
			_, err = s.opts.LoanOpts.Insert(ctx, &bank.LoanOptions{
				FinPrdtCd:      o.FinPrdtCd,
				MrtgTypNm:      nullStr(o.MrtgTypNm),
				RpayTypeNm:     nullStr(o.RpayTypeNm),
				LendRateTypeNm: nullStr(o.LendRateTypeNm),
				LendRateMin:    sql.NullFloat64{Float64: float64(o.LendRateMin), Valid: true},
				LendRateMax:    sql.NullFloat64{Float64: float64(o.LendRateMax), Valid: true},
			})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
