// Package storage 提供基于 Redis 的玩家生涯数据与排行榜存储。
// 房间与对局状态始终只存在于内存中，这里只记录跨对局的生涯数据。
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/type-shooter/internal/protocol"
)

const (
	// Redis key
	careerKeyPrefix = "player:career:"
	leaderboardKey  = "leaderboard:score"
)

// 积分规则
const (
	WinDuelScore  = 25 // 对局获胜
	LoseDuelScore = 5  // 对局失败（参与分）
)

// PlayerCareer 玩家生涯数据
type PlayerCareer struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	DuelsPlayed int   `json:"duels_played"` // 完成的对局数
	DuelsWon    int   `json:"duels_won"`    // 获胜的对局数
	RoundsWon   int   `json:"rounds_won"`   // 累计获胜回合数
	BestTimeMs  int64 `json:"best_time_ms"` // 历史最快获胜用时（毫秒），0 = 尚无
	Score       int   `json:"score"`        // 当前积分

	LastPlayedAt int64 `json:"last_played_at"` // 最后对局时间
	CreatedAt    int64 `json:"created_at"`     // 首次对局时间
}

// LeaderboardManager 排行榜管理器
type LeaderboardManager struct {
	redis *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{redis: client}
}

// getCareer 获取玩家生涯数据，不存在时返回 nil
func (lm *LeaderboardManager) getCareer(ctx context.Context, playerID string) (*PlayerCareer, error) {
	key := careerKeyPrefix + playerID
	data, err := lm.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var career PlayerCareer
	if err := json.Unmarshal(data, &career); err != nil {
		return nil, err
	}
	return &career, nil
}

// saveCareer 保存玩家生涯数据
func (lm *LeaderboardManager) saveCareer(ctx context.Context, career *PlayerCareer) error {
	key := careerKeyPrefix + career.PlayerID
	data, err := json.Marshal(career)
	if err != nil {
		return err
	}
	return lm.redis.Set(ctx, key, data, 0).Err()
}

// getOrCreateCareer 获取或创建玩家生涯数据
func (lm *LeaderboardManager) getOrCreateCareer(ctx context.Context, playerID, playerName string) (*PlayerCareer, error) {
	career, err := lm.getCareer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if career == nil {
		career = &PlayerCareer{
			PlayerID:   playerID,
			PlayerName: playerName,
			CreatedAt:  time.Now().Unix(),
		}
	}
	return career, nil
}

// RecordDuelResult 记录对局结果。roundsWon 是玩家本局赢下的回合数，
// bestRoundMs 是本局最快获胜用时，0 表示本局未赢过回合。
func (lm *LeaderboardManager) RecordDuelResult(ctx context.Context, playerID, playerName string, won bool, roundsWon int, bestRoundMs int64) error {
	career, err := lm.getOrCreateCareer(ctx, playerID, playerName)
	if err != nil {
		return err
	}

	career.PlayerName = playerName
	career.DuelsPlayed++
	career.LastPlayedAt = time.Now().Unix()

	if won {
		career.DuelsWon++
		career.Score += WinDuelScore
	} else {
		career.Score += LoseDuelScore
	}

	career.RoundsWon += roundsWon
	if bestRoundMs > 0 && (career.BestTimeMs == 0 || bestRoundMs < career.BestTimeMs) {
		career.BestTimeMs = bestRoundMs
	}

	if err := lm.saveCareer(ctx, career); err != nil {
		return err
	}

	// 更新排行榜
	return lm.redis.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(career.Score),
		Member: career.PlayerID,
	}).Err()
}

// GetPlayerCareer 获取玩家生涯数据（协议格式），从未完成对局时返回 nil
func (lm *LeaderboardManager) GetPlayerCareer(ctx context.Context, playerID string) (*protocol.CareerInfo, error) {
	career, err := lm.getCareer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if career == nil {
		return nil, nil
	}

	return &protocol.CareerInfo{
		PlayerID:    career.PlayerID,
		PlayerName:  career.PlayerName,
		DuelsPlayed: career.DuelsPlayed,
		DuelsWon:    career.DuelsWon,
		RoundsWon:   career.RoundsWon,
		BestTimeMs:  career.BestTimeMs,
		Score:       career.Score,
	}, nil
}

// GetPlayerRank 获取玩家排名（从 1 开始），未上榜时返回 0
func (lm *LeaderboardManager) GetPlayerRank(ctx context.Context, playerID string) (int64, error) {
	rank, err := lm.redis.ZRevRank(ctx, leaderboardKey, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return rank + 1, nil
}

// GetLeaderboard 获取按积分降序的排行榜
func (lm *LeaderboardManager) GetLeaderboard(ctx context.Context, limit int) ([]protocol.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	ids, err := lm.redis.ZRevRange(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]protocol.LeaderboardEntry, 0, len(ids))
	for i, id := range ids {
		career, err := lm.getCareer(ctx, id)
		if err != nil {
			return nil, err
		}
		if career == nil {
			continue // 榜上有名但数据已丢失，跳过
		}
		entries = append(entries, protocol.LeaderboardEntry{
			Rank:       i + 1,
			PlayerID:   career.PlayerID,
			PlayerName: career.PlayerName,
			Score:      career.Score,
			DuelsWon:   career.DuelsWon,
		})
	}
	return entries, nil
}
