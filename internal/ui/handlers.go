package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/type-shooter/internal/protocol"
	"github.com/palemoky/type-shooter/internal/sound"
)

// handleServerMessage 处理服务器消息
// 按消息类型分发到具体的处理函数
func (m *OnlineModel) handleServerMessage(msg *protocol.Message) tea.Cmd {
	switch msg.Type {
	case protocol.MsgGameCreated:
		return m.handleMsgGameCreated(msg)
	case protocol.MsgJoinError:
		return m.handleMsgJoinError(msg)
	case protocol.MsgGameStart:
		return m.handleMsgGameStart(msg)
	case protocol.MsgCountdown:
		return m.handleMsgCountdown(msg)
	case protocol.MsgRoundStart:
		return m.handleMsgRoundStart(msg)
	case protocol.MsgRoundEnd:
		return m.handleMsgRoundEnd(msg)
	case protocol.MsgGameOver:
		return m.handleMsgGameOver(msg)
	case protocol.MsgPlayerLeft:
		return m.handleMsgPlayerLeft(msg)
	case protocol.MsgStats:
		return m.handleMsgStats(msg)
	case protocol.MsgLeaderboard:
		return m.handleMsgLeaderboard(msg)
	case protocol.MsgError:
		return m.handleMsgError(msg)
	}
	return nil
}

func (m *OnlineModel) handleMsgGameCreated(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.GameCreatedPayload](msg)
	if err != nil {
		return nil
	}
	m.roomID = payload.RoomID
	m.phase = PhaseWaiting
	return nil
}

func (m *OnlineModel) handleMsgJoinError(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.JoinErrorPayload](msg)
	if err != nil {
		return nil
	}
	m.roomID = ""
	m.phase = PhaseMenu
	m.error = payload.Message
	return clearErrorAfter(3 * time.Second)
}

func (m *OnlineModel) handleMsgGameStart(_ *protocol.Message) tea.Cmd {
	m.phase = PhaseCountdown
	m.countdown = 0
	m.round = 1
	return nil
}

func (m *OnlineModel) handleMsgCountdown(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.CountdownPayload](msg)
	if err != nil {
		return nil
	}
	m.phase = PhaseCountdown
	m.countdown = payload.Count
	m.soundManager.Play(sound.SoundTick)
	return nil
}

func (m *OnlineModel) handleMsgRoundStart(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.RoundStartPayload](msg)
	if err != nil {
		return nil
	}
	m.phase = PhaseTyping
	m.word = payload.Word
	m.round = payload.Round
	m.duelStats = payload.Stats
	m.input.SetValue("")
	m.input.Focus()
	m.soundManager.Play(sound.SoundDraw)
	return nil
}

func (m *OnlineModel) handleMsgRoundEnd(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.RoundEndPayload](msg)
	if err != nil {
		return nil
	}
	m.phase = PhaseRoundResult
	m.roundWinner = payload.Winner
	m.timeToShoot = payload.TimeToShoot
	m.duelStats = payload.Stats
	m.soundManager.Play(sound.SoundGunshot)
	return nil
}

func (m *OnlineModel) handleMsgGameOver(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.GameOverPayload](msg)
	if err != nil {
		return nil
	}
	m.phase = PhaseGameOver
	m.duelWinner = payload.Winner
	m.timeToShoot = payload.TimeToShoot
	m.finalWord = payload.FinalWord
	m.duelStats = payload.Stats

	if payload.Winner == m.playerID {
		m.soundManager.Play(sound.SoundVictory)
	} else {
		m.soundManager.Play(sound.SoundDefeat)
	}
	return nil
}

func (m *OnlineModel) handleMsgPlayerLeft(_ *protocol.Message) tea.Cmd {
	// 对手离场，对局作废
	m.backToMenu()
	m.notice = "🚪 对手已离场，对局结束"
	m.soundManager.Play(sound.SoundHolster)
	return nil
}

func (m *OnlineModel) handleMsgStats(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.StatsPayload](msg)
	if err != nil {
		return nil
	}
	m.career = payload.Career
	m.phase = PhaseStats
	return nil
}

func (m *OnlineModel) handleMsgLeaderboard(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.LeaderboardPayload](msg)
	if err != nil {
		return nil
	}
	m.leaderboard = payload.Entries
	m.phase = PhaseLeaderboard
	return nil
}

func (m *OnlineModel) handleMsgError(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	if err != nil {
		return nil
	}
	m.error = payload.Message
	return clearErrorAfter(3 * time.Second)
}

// clearErrorAfter 延时清除错误提示
func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}
