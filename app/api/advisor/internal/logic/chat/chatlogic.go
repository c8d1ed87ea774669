// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"context"
	stderrors "errors"
	"strings"

	"FinNavi/app/api/advisor/internal/agent/dialog"
	"FinNavi/app/api/advisor/internal/agent/nlu"
	"FinNavi/app/api/advisor/internal/logic/helper"
	"FinNavi/app/api/advisor/internal/svc"
	"FinNavi/app/api/advisor/internal/types"
	"FinNavi/app/common/consts/errno"
	"FinNavi/app/common/snowflake"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

const llmApology = "지금 AI 사용량이 잠시 초과되어 추천이 지연되고 있어요. 5분 뒤 다시 시도해 주세요."

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Chat runs one dialogue turn. Turns for the same session are serialized;
// state is persisted only after the turn fully succeeds, so a collaborator
// outage leaves the stored session retryable.
func (l *ChatLogic) Chat(req *types.ChatRequest) (*types.ChatResponse, error) {
	userMsg := strings.TrimSpace(req.Message)
	if userMsg == "" {
		return nil, errors.New(int(errno.InvalidParam), "message is required")
	}
	if l.svcCtx.Classifier == nil || l.svcCtx.Orchestrator == nil {
		return nil, errors.New(int(errno.LLMUnavailable), llmApology)
	}

	sessionID := strings.TrimSpace(req.SessionId)
	if sessionID == "" {
		sessionID = snowflake.NextString()
	}

	unlock := l.svcCtx.SessionLocker.Lock(sessionID)
	defer unlock()

	st, err := l.svcCtx.Sessions.Get(l.ctx, sessionID)
	if err != nil {
		l.Logger.Error("logic: load session failed: ", err)
		return nil, errors.New(int(errno.SessionStoreError), "상담 기록을 불러오지 못했어요. 잠시 후 다시 시도해 주세요.")
	}
	if st == nil {
		st = dialog.NewState()
	}

	if st.ProductType == "" {
		decision, err := l.svcCtx.Classifier.Classify(l.ctx, userMsg)
		if err != nil {
			l.Logger.Error("logic: type classification failed: ", err)
			return nil, errors.New(int(errno.LLMUnavailable), llmApology)
		}
		if decision.Action == nlu.ActionAsk {
			return l.finishTurn(sessionID, st, userMsg, decision.Question, dialog.StageAsk)
		}
		st.ProductType = decision.ProductType
	}

	out, err := l.svcCtx.Orchestrator.AdvanceTurn(l.ctx, st, userMsg)
	if err != nil {
		l.Logger.Error("logic: advance turn failed: ", err)
		if stderrors.Is(err, nlu.ErrModelCall) {
			return nil, errors.New(int(errno.LLMUnavailable), llmApology)
		}
		return nil, errors.New(int(errno.CatalogStoreError), "상품 정보를 불러오지 못했어요. 잠시 후 다시 시도해 주세요.")
	}

	reply, err := helper.RenderReply(out)
	if err != nil {
		return nil, errors.New(int(errno.InternalError), "internal error")
	}
	return l.finishTurn(sessionID, st, userMsg, reply, out.Stage)
}

func (l *ChatLogic) finishTurn(sessionID string, st *dialog.State, userMsg, reply, stage string) (*types.ChatResponse, error) {
	st.AppendHistory("user", userMsg)
	st.AppendHistory("assistant", reply)
	if err := l.svcCtx.Sessions.Put(l.ctx, sessionID, st); err != nil {
		l.Logger.Error("logic: persist session failed: ", err)
		return nil, errors.New(int(errno.SessionStoreError), "상담 기록을 저장하지 못했어요. 잠시 후 다시 시도해 주세요.")
	}
	return &types.ChatResponse{
		Reply:     reply,
		SessionId: sessionID,
		Stage:     stage,
	}, nil
}
