package room

import (
	"sync"
	"time"

	"github.com/palemoky/type-shooter/internal/protocol"
	"github.com/palemoky/type-shooter/internal/types"
)

const (
	// 每个房间最多两名玩家
	maxPlayers = 2
	// 房间号长度
	roomIDLength = 6
	// 房间号字符集
	roomIDChars = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// State 房间状态
type State int

const (
	StateWaiting   State = iota // 等待第二名玩家
	StateCountdown              // 倒计时进行中
	StateActive                 // 回合进行中，单词可见
	StateOver                   // 对局结束，房间即将删除
)

// PlayerStats 对局内玩家统计
type PlayerStats struct {
	Wins         int   // 获胜回合数
	TotalGames   int   // 参与的已结算回合数
	FastestWinMs int64 // 最快获胜用时（毫秒），0 = 尚未获胜
}

// Room 对局房间
type Room struct {
	ID             string
	Players        []string // 连接 ID，按加入顺序
	State          State
	Word           string // 当前回合目标单词，回合未开始前不对外暴露
	Round          int    // 当前回合 [1, maxRounds]
	RoundStartedAt time.Time
	Stats          map[string]*PlayerStats
	CreatedAt      time.Time

	clients        map[string]types.ClientInterface
	countdownArmed bool // 防止同一房间叠加多个倒计时序列
	closed         bool // 房间已关闭（终局或解散），拒绝后续加入与结算

	mu sync.RWMutex
}

// addPlayerLocked 添加玩家并初始化其统计。调用方需持有房间写锁。
func (r *Room) addPlayerLocked(client types.ClientInterface) {
	id := client.GetID()
	r.Players = append(r.Players, id)
	r.Stats[id] = &PlayerStats{}
	r.clients[id] = client
}

// Broadcast 向房间内所有玩家广播消息。调用方需持有房间锁，
// 以保证广播顺序与状态转移顺序一致。SendMessage 不会阻塞。
func (r *Room) Broadcast(msg *protocol.Message) {
	for _, id := range r.Players {
		if client, ok := r.clients[id]; ok {
			client.SendMessage(msg)
		}
	}
}

// BroadcastExcept 向除指定玩家外的所有玩家广播消息。调用方需持有房间锁。
func (r *Room) BroadcastExcept(exceptID string, msg *protocol.Message) {
	for _, id := range r.Players {
		if id == exceptID {
			continue
		}
		if client, ok := r.clients[id]; ok {
			client.SendMessage(msg)
		}
	}
}

// statsSnapshotLocked 生成用于广播的统计快照。调用方需持有房间锁。
func (r *Room) statsSnapshotLocked() map[string]protocol.PlayerStatsInfo {
	snapshot := make(map[string]protocol.PlayerStatsInfo, len(r.Stats))
	for id, stats := range r.Stats {
		snapshot[id] = protocol.PlayerStatsInfo{
			Wins:       stats.Wins,
			TotalGames: stats.TotalGames,
			FastestWin: stats.FastestWinMs,
		}
	}
	return snapshot
}

// PlayerCount 返回当前玩家数
func (r *Room) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Players)
}

// CurrentState 返回当前房间状态
func (r *Room) CurrentState() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.State
}

// CurrentWord 返回当前回合单词（仅测试与服务端内部使用）
func (r *Room) CurrentWord() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Word
}

// CurrentRound 返回当前回合数
func (r *Room) CurrentRound() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Round
}
