package protocol

// --- 客户端请求 Payloads ---

// JoinGamePayload 加入对局请求
type JoinGamePayload struct {
	RoomID string `json:"roomId"`
}

// SubmitWordPayload 提交单词请求
type SubmitWordPayload struct {
	RoomID string `json:"roomId"`
	Word   string `json:"word"`
}

// GetLeaderboardPayload 排行榜查询请求
type GetLeaderboardPayload struct {
	Limit int `json:"limit"` // 0 表示使用服务端默认值
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功
type ConnectedPayload struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// GameCreatedPayload 对局创建成功
type GameCreatedPayload struct {
	RoomID string `json:"roomId"`
}

// JoinErrorPayload 加入失败
type JoinErrorPayload struct {
	Message string `json:"message"`
}

// CountdownPayload 倒计时 tick
type CountdownPayload struct {
	Count int `json:"count"` // 3, 2, 1
}

// PlayerStatsInfo 对局内玩家统计快照
type PlayerStatsInfo struct {
	Wins       int   `json:"wins"`
	TotalGames int   `json:"totalGames"`
	FastestWin int64 `json:"fastestTime,omitempty"` // 最快获胜用时（毫秒），未获胜时省略
}

// RoundStartPayload 回合开始
type RoundStartPayload struct {
	Word  string                     `json:"word"`
	Round int                        `json:"round"`
	Stats map[string]PlayerStatsInfo `json:"stats"`
}

// RoundEndPayload 回合结束
type RoundEndPayload struct {
	Winner      string                     `json:"winner"`
	Stats       map[string]PlayerStatsInfo `json:"stats"`
	TimeToShoot string                     `json:"timeToShoot"` // 秒，保留两位小数
}

// GameOverPayload 对局结束
type GameOverPayload struct {
	Winner      string                     `json:"winner"`
	Stats       map[string]PlayerStatsInfo `json:"stats"`
	TimeToShoot string                     `json:"timeToShoot"`
	FinalWord   string                     `json:"finalWord"`
}

// CareerInfo 玩家生涯数据
type CareerInfo struct {
	PlayerID    string `json:"playerId"`
	PlayerName  string `json:"playerName"`
	DuelsPlayed int    `json:"duelsPlayed"`
	DuelsWon    int    `json:"duelsWon"`
	RoundsWon   int    `json:"roundsWon"`
	BestTimeMs  int64  `json:"bestTimeMs,omitempty"`
	Score       int    `json:"score"`
}

// StatsPayload 个人生涯数据响应
type StatsPayload struct {
	Career *CareerInfo `json:"career"` // 从未完成对局时为 null
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
	DuelsWon   int    `json:"duelsWon"`
}

// LeaderboardPayload 排行榜响应
type LeaderboardPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// ErrorPayload 错误消息
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
