package types

import (
	"context"

	"github.com/palemoky/type-shooter/internal/protocol"
)

// ClientInterface 客户端接口 - 避免 room 包依赖网络层
type ClientInterface interface {
	GetID() string
	GetName() string
	GetRoom() string
	SetRoom(roomID string)
	SendMessage(msg *protocol.Message)
	Close()
}

// CareerRecorder 生涯数据记录接口 - 对局结束时由房间管理器调用
type CareerRecorder interface {
	RecordDuelResult(ctx context.Context, playerID, playerName string, won bool, roundsWon int, bestRoundMs int64) error
}
