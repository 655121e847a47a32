package room

import (
	"time"

	"github.com/palemoky/type-shooter/internal/protocol"
)

// startCountdown 为房间武装一次倒计时序列。
// countdownArmed 保证每回合最多武装一次；来自上一回合的过期回调
// 会因状态校验失败而变成 no-op。
func (m *Manager) startCountdown(roomID string) {
	r := m.GetRoom(roomID)
	if r == nil {
		return
	}

	r.mu.Lock()
	if r.State != StateCountdown || r.countdownArmed {
		r.mu.Unlock()
		return
	}
	r.countdownArmed = true
	r.mu.Unlock()

	go m.runCountdown(roomID)
}

// runCountdown 依次广播 3, 2, 1，随后将回合置为进行中。
// 每次醒来都按房间号重新获取房间：断开连接的删除路径不发送取消信号，
// 序列靠"存在性检查"自行终止。硬超时保证即使引用过期也不会泄漏计时器。
func (m *Manager) runCountdown(roomID string) {
	deadline := time.Now().Add(m.cfg.CountdownTimeoutDuration())
	interval := m.cfg.TickIntervalDuration()

	for count := m.cfg.CountdownTicks; count >= 1; count-- {
		r := m.GetRoom(roomID)
		if r == nil || time.Now().After(deadline) {
			return // 房间已解散或超时，放弃整个序列
		}

		r.mu.RLock()
		if r.State != StateCountdown {
			r.mu.RUnlock()
			return
		}
		r.Broadcast(protocol.MustNewMessage(protocol.MsgCountdown, protocol.CountdownPayload{Count: count}))
		r.mu.RUnlock()

		time.Sleep(interval)
	}

	m.armRound(roomID, deadline)
}

// armRound 将房间置为回合进行中并亮出单词
func (m *Manager) armRound(roomID string, deadline time.Time) {
	r := m.GetRoom(roomID)
	if r == nil || time.Now().After(deadline) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.State != StateCountdown {
		return
	}

	r.State = StateActive
	r.RoundStartedAt = time.Now()

	r.Broadcast(protocol.MustNewMessage(protocol.MsgRoundStart, protocol.RoundStartPayload{
		Word:  r.Word,
		Round: r.Round,
		Stats: r.statsSnapshotLocked(),
	}))
}
