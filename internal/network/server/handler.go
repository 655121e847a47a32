package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/palemoky/type-shooter/internal/apperrors"
	"github.com/palemoky/type-shooter/internal/logger"
	"github.com/palemoky/type-shooter/internal/protocol"
)

const defaultLeaderboardLimit = 10

// Handler 消息处理器，所有入站消息的单一入口
type Handler struct {
	server *Server
}

// NewHandler 创建处理器
func NewHandler(s *Server) *Handler {
	return &Handler{server: s}
}

// Handle 处理消息。处理过程中的 panic 在此边界恢复，
// 以通用 error 消息回应客户端，绝不拖垮读取循环。
func (h *Handler) Handle(client *Client, msg *protocol.Message) {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			log.Printf("⚠️ 处理消息 %s 时 panic: %v", msg.Type, r)
			client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInternal))
		}
	}()

	switch msg.Type {
	// 对局操作
	case protocol.MsgCreateGame:
		h.handleCreateGame(client)
	case protocol.MsgJoinGame:
		h.handleJoinGame(client, msg)
	case protocol.MsgSubmitWord:
		h.handleSubmitWord(client, msg)

	// 生涯数据
	case protocol.MsgGetStats:
		h.handleGetStats(client)
	case protocol.MsgGetLeaderboard:
		h.handleGetLeaderboard(client, msg)

	default:
		log.Printf("⚠️ 未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}

// handleCreateGame 创建对局
func (h *Handler) handleCreateGame(client *Client) {
	r, err := h.server.roomManager.CreateRoom(client)
	if err != nil {
		var gameErr *apperrors.GameError
		if errors.As(err, &gameErr) {
			client.SendMessage(protocol.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
			return
		}
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInternal))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgGameCreated, protocol.GameCreatedPayload{
		RoomID: r.ID,
	}))
}

// handleJoinGame 加入对局。满员或不存在的房间以 joinError 回应。
func (h *Handler) handleJoinGame(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinGamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if _, err := h.server.roomManager.JoinRoom(client, payload.RoomID); err != nil {
		var gameErr *apperrors.GameError
		if errors.As(err, &gameErr) {
			client.SendMessage(protocol.MustNewMessage(protocol.MsgJoinError, protocol.JoinErrorPayload{
				Message: gameErr.Message,
			}))
			return
		}
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInternal))
	}
}

// handleSubmitWord 提交单词。非法提交由房间状态机静默忽略。
func (h *Handler) handleSubmitWord(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SubmitWordPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	h.server.roomManager.SubmitWord(client, payload.RoomID, payload.Word)
}

// handleGetStats 查询个人生涯数据
func (h *Handler) handleGetStats(client *Client) {
	if h.server.leaderboard == nil {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgStats, protocol.StatsPayload{}))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	career, err := h.server.leaderboard.GetPlayerCareer(ctx, client.GetID())
	if err != nil {
		log.Printf("查询生涯数据失败 (玩家 %s): %v", client.GetID(), err)
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInternal))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgStats, protocol.StatsPayload{Career: career}))
}

// handleGetLeaderboard 查询排行榜
func (h *Handler) handleGetLeaderboard(client *Client, msg *protocol.Message) {
	limit := defaultLeaderboardLimit
	if len(msg.Payload) > 0 {
		if payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg); err == nil && payload.Limit > 0 {
			limit = payload.Limit
		}
	}

	if h.server.leaderboard == nil {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboard, protocol.LeaderboardPayload{}))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	entries, err := h.server.leaderboard.GetLeaderboard(ctx, limit)
	if err != nil {
		log.Printf("查询排行榜失败: %v", err)
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInternal))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboard, protocol.LeaderboardPayload{Entries: entries}))
}
