package bank

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ SyncRunsModel = (*customSyncRunsModel)(nil)

type (
	// SyncRunsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customSyncRunsModel.
	SyncRunsModel interface {
		syncRunsModel
		Begin(ctx context.Context, mode, startedAt string) (int64, error)
		Finish(ctx context.Context, id int64, finishedAt, status, message string) error
	}

	customSyncRunsModel struct {
		*defaultSyncRunsModel
	}
)

// NewSyncRunsModel returns a model for the database table.
func NewSyncRunsModel(conn sqlx.SqlConn) SyncRunsModel {
	return &customSyncRunsModel{
		defaultSyncRunsModel: newSyncRunsModel(conn),
	}
}

func (m *customSyncRunsModel) Begin(ctx context.Context, mode, startedAt string) (int64, error) {
	ret, err := m.Insert(ctx, &SyncRuns{
		Mode:      mode,
		StartedAt: startedAt,
		Status:    "running",
	})
	if err != nil {
		return 0, err
	}
	return ret.LastInsertId()
}

func (m *customSyncRunsModel) Finish(ctx context.Context, id int64, finishedAt, status, message string) error {
	query := fmt.Sprintf("update %s set `finished_at` = ?, `status` = ?, `message` = ? where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, finishedAt, status, sql.NullString{String: message, Valid: message != ""}, id)
	return err
}
