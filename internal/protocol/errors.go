package protocol

// 错误码
const (
	ErrCodeUnknown       = 1000
	ErrCodeInvalidMsg    = 1001
	ErrCodeRateLimit     = 1002 // 速率限制
	ErrCodeRoomNotFound  = 2001
	ErrCodeRoomFull      = 2002
	ErrCodeAlreadyInRoom = 2003 // 已在房间中
	ErrCodeInternal      = 5001 // 服务端内部错误
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:       "未知错误",
	ErrCodeInvalidMsg:    "无效的消息格式",
	ErrCodeRateLimit:     "请求过于频繁",
	ErrCodeRoomNotFound:  "房间不存在",
	ErrCodeRoomFull:      "房间已满",
	ErrCodeAlreadyInRoom: "您已在房间中",
	ErrCodeInternal:      "服务器内部错误",
}
