package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 对局操作
	MsgCreateGame MessageType = "createGame" // 创建对局
	MsgJoinGame   MessageType = "joinGame"   // 加入对局
	MsgSubmitWord MessageType = "submitWord" // 提交单词

	// 生涯数据
	MsgGetStats       MessageType = "getStats"       // 查询个人生涯数据
	MsgGetLeaderboard MessageType = "getLeaderboard" // 查询排行榜
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功

	// 对局流程
	MsgGameCreated MessageType = "gameCreated" // 对局创建成功
	MsgJoinError   MessageType = "joinError"   // 加入失败
	MsgGameStart   MessageType = "gameStart"   // 双方就位
	MsgCountdown   MessageType = "countdown"   // 倒计时 tick
	MsgRoundStart  MessageType = "roundStart"  // 回合开始（亮出单词）
	MsgRoundEnd    MessageType = "roundEnd"    // 回合结束
	MsgGameOver    MessageType = "gameOver"    // 对局结束
	MsgPlayerLeft  MessageType = "playerLeft"  // 对手离开

	// 生涯数据
	MsgStats       MessageType = "stats"       // 个人生涯数据
	MsgLeaderboard MessageType = "leaderboard" // 排行榜

	// 错误
	MsgError MessageType = "error" // 错误消息
)
