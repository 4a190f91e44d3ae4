package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"PokerAssist/internal/analyzer"
	"PokerAssist/internal/game/engine"
	"PokerAssist/internal/utils"
	"PokerAssist/internal/websocket"
)

const requestTimeout = 5 * time.Second

// GameManager 把 websocket 消息转给分析服务，并只回复发送者
type GameManager struct {
	svc analyzer.Analyzer
	hub websocket.HubInterface
}

func NewGameManager(hub websocket.HubInterface, svc analyzer.Analyzer) *GameManager {
	return &GameManager{svc: svc, hub: hub}
}

// HandlePlayerMessage 统一入口（来自 Hub.OnIncoming）
func (m *GameManager) HandlePlayerMessage(msg websocket.IncomingMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var (
		a   *analyzer.Analysis
		err error
	)
	switch msg.Event {
	case websocket.EventAnalyze:
		var req analyzer.AnalyzeRequest
		if err = decode(msg.Data, &req); err == nil {
			a, err = m.svc.Analyze(ctx, req)
		}

	case websocket.EventPractice:
		var req analyzer.PracticeRequest
		if err = decode(msg.Data, &req); err == nil {
			a, err = m.svc.Practice(ctx, req)
		}

	default:
		m.replyError(msg.From, analyzer.ErrorResponse{
			Code:  analyzer.CodeValidation,
			Error: fmt.Sprintf("unknown event %q", msg.Event),
		})
		return
	}

	if err != nil {
		_, body := analyzer.NewErrorResponse(err)
		m.replyError(msg.From, body)
		return
	}

	m.hub.SendToPlayer(msg.From, websocket.OutgoingMessage{Event: websocket.EventAnalysis, Data: a})
}

func (m *GameManager) replyError(addr string, body analyzer.ErrorResponse) {
	utils.Log.Debug("ws request rejected", "address", addr, "code", body.Code, "err", body.Error)
	m.hub.SendToPlayer(addr, websocket.OutgoingMessage{Event: websocket.EventError, Data: body})
}

// decode treats a missing payload as an empty request.
func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &engine.ValidationError{Field: "data", Reason: err.Error()}
	}
	return nil
}
