package room

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/palemoky/type-shooter/internal/protocol"
	"github.com/palemoky/type-shooter/internal/types"
)

// careerResult 对局结束后写入生涯数据的快照
type careerResult struct {
	playerID   string
	playerName string
	won        bool
	roundsWon  int
	bestMs     int64
}

// SubmitWord 处理玩家的单词提交。
// 仅当回合进行中且单词完全匹配（区分大小写）时判定获胜；
// 回合外、错误单词、非房间成员的提交全部静默忽略。
// 房间锁保证同一房间的提交串行处理，先到者获胜，无需额外的平局裁决。
func (m *Manager) SubmitWord(client types.ClientInterface, roomID, word string) {
	r := m.GetRoom(roomID)
	if r == nil {
		return
	}

	r.mu.Lock()

	if r.State != StateActive || word != r.Word {
		r.mu.Unlock()
		return
	}

	winnerID := client.GetID()
	stats, member := r.Stats[winnerID]
	if !member {
		r.mu.Unlock()
		return
	}

	// 回合结算：先到的正确提交获胜
	elapsed := time.Since(r.RoundStartedAt)
	elapsedMs := elapsed.Milliseconds()
	if elapsedMs < 1 {
		elapsedMs = 1 // 0 是"尚未获胜"哨兵值
	}
	if stats.FastestWinMs == 0 || elapsedMs < stats.FastestWinMs {
		stats.FastestWinMs = elapsedMs
	}
	stats.Wins++
	for _, ps := range r.Stats {
		ps.TotalGames++
	}

	timeToShoot := fmt.Sprintf("%.2f", elapsed.Seconds())

	if r.Round < m.cfg.MaxRounds {
		// 非末回合：推进回合并重新武装倒计时
		wonRound := r.Round
		r.Round++
		r.Word = m.words.Next()
		r.State = StateCountdown
		r.countdownArmed = false
		r.RoundStartedAt = time.Time{}

		r.Broadcast(protocol.MustNewMessage(protocol.MsgRoundEnd, protocol.RoundEndPayload{
			Winner:      winnerID,
			Stats:       r.statsSnapshotLocked(),
			TimeToShoot: timeToShoot,
		}))
		r.mu.Unlock()

		log.Printf("🎯 房间 %s 第 %d 回合由 %s 获胜 (%s 秒)", roomID, wonRound, client.GetName(), timeToShoot)

		// 展示延迟后进入下一轮倒计时；期间房间可能已解散，startCountdown 会自行校验
		time.AfterFunc(m.cfg.RoundDelayDuration(), func() {
			m.startCountdown(roomID)
		})
		return
	}

	// 末回合：先在锁内离开 Active，排队等锁的后续提交会被状态检查拒绝，
	// 保证终局只结算一次
	r.State = StateOver
	r.closed = true

	finalWord := r.Word
	r.Broadcast(protocol.MustNewMessage(protocol.MsgGameOver, protocol.GameOverPayload{
		Winner:      winnerID,
		Stats:       r.statsSnapshotLocked(),
		TimeToShoot: timeToShoot,
		FinalWord:   finalWord,
	}))

	results := make([]careerResult, 0, len(r.Players))
	for _, id := range r.Players {
		c, ok := r.clients[id]
		if !ok {
			continue
		}
		results = append(results, careerResult{
			playerID:   id,
			playerName: c.GetName(),
			won:        id == winnerID,
			roundsWon:  r.Stats[id].Wins,
			bestMs:     r.Stats[id].FastestWinMs,
		})
	}
	r.mu.Unlock()

	log.Printf("🏆 房间 %s 对局结束，胜者 %s", roomID, client.GetName())

	m.DeleteRoom(roomID)

	if m.career != nil {
		go m.recordCareers(results)
	}
}

// recordCareers 异步写入生涯数据，失败只记录日志
func (m *Manager) recordCareers(results []careerResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, res := range results {
		if err := m.career.RecordDuelResult(ctx, res.playerID, res.playerName, res.won, res.roundsWon, res.bestMs); err != nil {
			log.Printf("生涯数据写入失败 (玩家 %s): %v", res.playerID, err)
		}
	}
}
