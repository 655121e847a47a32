package apperrors

import (
	"github.com/palemoky/type-shooter/internal/protocol"
)

// GameError 游戏错误（携带协议错误码）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound  = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrRoomFull      = &GameError{Code: protocol.ErrCodeRoomFull, Message: "房间已满"}
	ErrAlreadyInRoom = &GameError{Code: protocol.ErrCodeAlreadyInRoom, Message: "您已在房间中"}
)
