package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/type-shooter/internal/protocol"
)

// Helper to create a fake Message
func createMessage(msgType protocol.MessageType, payload interface{}) *protocol.Message {
	return protocol.MustNewMessage(msgType, payload)
}

func TestHandleMsgGameCreated(t *testing.T) {
	model := NewOnlineModel("ws://localhost:8080")
	msg := createMessage(protocol.MsgGameCreated, protocol.GameCreatedPayload{RoomID: "abc123"})

	model.handleServerMessage(msg)

	assert.Equal(t, "abc123", model.roomID)
	assert.Equal(t, PhaseWaiting, model.phase)
}

func TestHandleMsgJoinError(t *testing.T) {
	model := NewOnlineModel("ws://localhost:8080")
	model.phase = PhaseJoinInput
	model.roomID = "abc123"
	msg := createMessage(protocol.MsgJoinError, protocol.JoinErrorPayload{Message: "房间已满"})

	model.handleServerMessage(msg)

	assert.Equal(t, PhaseMenu, model.phase)
	assert.Empty(t, model.roomID)
	assert.Equal(t, "房间已满", model.error)
}

func TestHandleMsgGameStartAndCountdown(t *testing.T) {
	model := NewOnlineModel("ws://localhost:8080")
	model.phase = PhaseWaiting

	model.handleServerMessage(createMessage(protocol.MsgGameStart, nil))
	assert.Equal(t, PhaseCountdown, model.phase)
	assert.Equal(t, 1, model.round)

	model.handleServerMessage(createMessage(protocol.MsgCountdown, protocol.CountdownPayload{Count: 3}))
	assert.Equal(t, 3, model.countdown)
}

func TestHandleMsgRoundStart(t *testing.T) {
	model := NewOnlineModel("ws://localhost:8080")
	model.phase = PhaseCountdown
	payload := protocol.RoundStartPayload{
		Word:  "sheriff",
		Round: 2,
		Stats: map[string]protocol.PlayerStatsInfo{
			"p1": {Wins: 1, TotalGames: 1, FastestWin: 800},
			"p2": {Wins: 0, TotalGames: 1},
		},
	}

	model.handleServerMessage(createMessage(protocol.MsgRoundStart, payload))

	assert.Equal(t, PhaseTyping, model.phase)
	assert.Equal(t, "sheriff", model.word)
	assert.Equal(t, 2, model.round)
	assert.Len(t, model.duelStats, 2)
	assert.True(t, model.input.Focused())
	assert.Empty(t, model.input.Value())
}

func TestHandleMsgRoundEnd(t *testing.T) {
	model := NewOnlineModel("ws://localhost:8080")
	model.phase = PhaseTyping
	model.playerID = "p1"
	payload := protocol.RoundEndPayload{
		Winner:      "p1",
		TimeToShoot: "1.42",
		Stats: map[string]protocol.PlayerStatsInfo{
			"p1": {Wins: 1, TotalGames: 1, FastestWin: 1420},
			"p2": {Wins: 0, TotalGames: 1},
		},
	}

	model.handleServerMessage(createMessage(protocol.MsgRoundEnd, payload))

	assert.Equal(t, PhaseRoundResult, model.phase)
	assert.Equal(t, "p1", model.roundWinner)
	assert.Equal(t, "1.42", model.timeToShoot)
}

func TestHandleMsgGameOver(t *testing.T) {
	model := NewOnlineModel("ws://localhost:8080")
	model.phase = PhaseRoundResult
	model.playerID = "p2"
	payload := protocol.GameOverPayload{
		Winner:      "p1",
		TimeToShoot: "0.98",
		FinalWord:   "tumbleweed",
		Stats: map[string]protocol.PlayerStatsInfo{
			"p1": {Wins: 5, TotalGames: 5, FastestWin: 980},
			"p2": {Wins: 0, TotalGames: 5},
		},
	}

	model.handleServerMessage(createMessage(protocol.MsgGameOver, payload))

	assert.Equal(t, PhaseGameOver, model.phase)
	assert.Equal(t, "p1", model.duelWinner)
	assert.Equal(t, "tumbleweed", model.finalWord)
}

func TestHandleMsgPlayerLeft(t *testing.T) {
	model := NewOnlineModel("ws://localhost:8080")
	model.phase = PhaseTyping
	model.roomID = "abc123"
	model.round = 3

	model.handleServerMessage(createMessage(protocol.MsgPlayerLeft, nil))

	assert.Equal(t, PhaseMenu, model.phase)
	assert.Empty(t, model.roomID)
	assert.Zero(t, model.round)
	assert.NotEmpty(t, model.notice)
}

func TestHandleMsgStatsAndLeaderboard(t *testing.T) {
	model := NewOnlineModel("ws://localhost:8080")
	model.phase = PhaseMenu

	statsPayload := protocol.StatsPayload{
		Career: &protocol.CareerInfo{PlayerID: "p1", DuelsWon: 3, DuelsPlayed: 5, Score: 85},
	}
	model.handleServerMessage(createMessage(protocol.MsgStats, statsPayload))
	assert.Equal(t, PhaseStats, model.phase)
	assert.Equal(t, 3, model.career.DuelsWon)

	lbPayload := protocol.LeaderboardPayload{
		Entries: []protocol.LeaderboardEntry{
			{Rank: 1, PlayerID: "p1", PlayerName: "Deadeye", Score: 85, DuelsWon: 3},
		},
	}
	model.handleServerMessage(createMessage(protocol.MsgLeaderboard, lbPayload))
	assert.Equal(t, PhaseLeaderboard, model.phase)
	assert.Len(t, model.leaderboard, 1)
}
