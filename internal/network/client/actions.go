package client

import (
	"github.com/palemoky/type-shooter/internal/protocol"
)

// --- 便捷方法 ---

// CreateGame 创建对局
func (c *Client) CreateGame() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgCreateGame, nil))
}

// JoinGame 加入对局
func (c *Client) JoinGame(roomID string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgJoinGame, protocol.JoinGamePayload{
		RoomID: roomID,
	}))
}

// SubmitWord 提交本回合输入的单词
func (c *Client) SubmitWord(roomID, word string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgSubmitWord, protocol.SubmitWordPayload{
		RoomID: roomID,
		Word:   word,
	}))
}

// GetStats 获取个人生涯数据
func (c *Client) GetStats() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgGetStats, nil))
}

// GetLeaderboard 获取排行榜
func (c *Client) GetLeaderboard(limit int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgGetLeaderboard, protocol.GetLeaderboardPayload{
		Limit: limit,
	}))
}
