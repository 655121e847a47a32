package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/type-shooter/internal/config"
	"github.com/palemoky/type-shooter/internal/game/room"
	"github.com/palemoky/type-shooter/internal/protocol"
	"github.com/palemoky/type-shooter/internal/words"
)

// newTestServer builds a server without network or Redis; career features
// degrade to empty responses.
func newTestServer() *Server {
	cfg := config.Default()
	cfg.Game.TickInterval = 10
	cfg.Game.CountdownTimeout = 500
	cfg.Game.RoundDelay = 10

	s := &Server{
		config:    cfg,
		clients:   make(map[string]*Client),
		semaphore: make(chan struct{}, 10),
	}
	s.roomManager = room.NewManager(cfg.Game, words.NewProvider("sheriff"), nil)
	s.handler = NewHandler(s)
	return s
}

func newTestClient(s *Server, id string) *Client {
	return &Client{
		ID:     id,
		Name:   "Tester-" + id,
		server: s,
		send:   make(chan []byte, 256),
	}
}

// nextMessage decodes the next queued outbound message for the client.
func nextMessage(t *testing.T, c *Client) *protocol.Message {
	t.Helper()
	select {
	case data := <-c.send:
		msg, err := protocol.Decode(data)
		require.NoError(t, err)
		return msg
	default:
		t.Fatal("no message queued")
		return nil
	}
}

func TestHandler_CreateGame(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	c := newTestClient(s, "p1")

	s.handler.Handle(c, protocol.MustNewMessage(protocol.MsgCreateGame, nil))

	msg := nextMessage(t, c)
	require.Equal(t, protocol.MsgGameCreated, msg.Type)

	payload, err := protocol.ParsePayload[protocol.GameCreatedPayload](msg)
	require.NoError(t, err)
	assert.NotEmpty(t, payload.RoomID)
	assert.Equal(t, payload.RoomID, c.GetRoom())
}

func TestHandler_CreateGame_AlreadyInRoom(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	c := newTestClient(s, "p1")

	s.handler.Handle(c, protocol.MustNewMessage(protocol.MsgCreateGame, nil))
	nextMessage(t, c) // gameCreated

	s.handler.Handle(c, protocol.MustNewMessage(protocol.MsgCreateGame, nil))

	msg := nextMessage(t, c)
	require.Equal(t, protocol.MsgError, msg.Type)

	payload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeAlreadyInRoom, payload.Code)
}

func TestHandler_JoinGame_RoomNotFound(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	c := newTestClient(s, "p1")

	s.handler.Handle(c, protocol.MustNewMessage(protocol.MsgJoinGame, protocol.JoinGamePayload{
		RoomID: "zzzzzz",
	}))

	msg := nextMessage(t, c)
	require.Equal(t, protocol.MsgJoinError, msg.Type)

	payload, err := protocol.ParsePayload[protocol.JoinErrorPayload](msg)
	require.NoError(t, err)
	assert.NotEmpty(t, payload.Message)
}

func TestHandler_JoinGame_StartsDuel(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	c1 := newTestClient(s, "p1")
	c2 := newTestClient(s, "p2")

	s.handler.Handle(c1, protocol.MustNewMessage(protocol.MsgCreateGame, nil))
	created := nextMessage(t, c1)
	payload, err := protocol.ParsePayload[protocol.GameCreatedPayload](created)
	require.NoError(t, err)

	s.handler.Handle(c2, protocol.MustNewMessage(protocol.MsgJoinGame, protocol.JoinGamePayload{
		RoomID: payload.RoomID,
	}))

	// Both players see the duel begin
	assert.Equal(t, protocol.MsgGameStart, nextMessage(t, c1).Type)
	assert.Equal(t, protocol.MsgGameStart, nextMessage(t, c2).Type)
	assert.Equal(t, payload.RoomID, c2.GetRoom())
}

func TestHandler_InvalidPayload(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	c := newTestClient(s, "p1")

	s.handler.Handle(c, &protocol.Message{Type: protocol.MsgJoinGame, Payload: []byte("{broken")})

	msg := nextMessage(t, c)
	require.Equal(t, protocol.MsgError, msg.Type)

	payload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeInvalidMsg, payload.Code)
}

func TestHandler_UnknownMessageType(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	c := newTestClient(s, "p1")

	s.handler.Handle(c, &protocol.Message{Type: "teleport"})

	msg := nextMessage(t, c)
	require.Equal(t, protocol.MsgError, msg.Type)
}

func TestHandler_GetStats_NoRedis(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	c := newTestClient(s, "p1")

	s.handler.Handle(c, protocol.MustNewMessage(protocol.MsgGetStats, nil))

	msg := nextMessage(t, c)
	require.Equal(t, protocol.MsgStats, msg.Type)

	payload, err := protocol.ParsePayload[protocol.StatsPayload](msg)
	require.NoError(t, err)
	assert.Nil(t, payload.Career)
}

func TestHandler_GetLeaderboard_NoRedis(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	c := newTestClient(s, "p1")

	s.handler.Handle(c, protocol.MustNewMessage(protocol.MsgGetLeaderboard, protocol.GetLeaderboardPayload{Limit: 5}))

	msg := nextMessage(t, c)
	require.Equal(t, protocol.MsgLeaderboard, msg.Type)

	payload, err := protocol.ParsePayload[protocol.LeaderboardPayload](msg)
	require.NoError(t, err)
	assert.Empty(t, payload.Entries)
}
