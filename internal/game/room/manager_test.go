package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/type-shooter/internal/apperrors"
	"github.com/palemoky/type-shooter/internal/config"
	"github.com/palemoky/type-shooter/internal/protocol"
	"github.com/palemoky/type-shooter/internal/testutil"
	"github.com/palemoky/type-shooter/internal/types"
	"github.com/palemoky/type-shooter/internal/words"
)

// newTestConfig returns a game config with millisecond timings so the
// countdown and round-delay paths run fast under test.
func newTestConfig() config.GameConfig {
	return config.GameConfig{
		CountdownTicks:   3,
		TickInterval:     10,
		CountdownTimeout: 500,
		RoundDelay:       20,
		MaxRounds:        5,
	}
}

func newTestManager() *Manager {
	// Single-word vocabulary keeps submissions deterministic
	return NewManager(newTestConfig(), words.NewProvider("sheriff"), nil)
}

func TestManager_CreateRoom(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	c1 := &testutil.SimpleClient{ID: "p1", Name: "Billy"}

	r, err := m.CreateRoom(c1)
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Len(t, r.ID, roomIDLength)
	assert.Equal(t, StateWaiting, r.CurrentState())
	assert.Equal(t, 1, r.CurrentRound())
	assert.Equal(t, "sheriff", r.CurrentWord())
	assert.Equal(t, []string{"p1"}, r.Players)
	assert.Equal(t, &PlayerStats{}, r.Stats["p1"])
	assert.Equal(t, r.ID, c1.GetRoom())
	assert.Same(t, r, m.GetRoom(r.ID))
}

func TestManager_CreateRoom_AlreadyInRoom(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	c1 := &testutil.SimpleClient{ID: "p1", Name: "Billy"}

	_, err := m.CreateRoom(c1)
	require.NoError(t, err)

	_, err = m.CreateRoom(c1)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyInRoom)
}

func TestManager_JoinRoom_NotFound(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	c := &testutil.SimpleClient{ID: "p1", Name: "Billy"}

	_, err := m.JoinRoom(c, "zzzzzz")
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestManager_JoinRoom_Full(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	c1 := &testutil.SimpleClient{ID: "p1", Name: "Billy"}
	c2 := &testutil.SimpleClient{ID: "p2", Name: "Jesse"}
	c3 := &testutil.SimpleClient{ID: "p3", Name: "Wyatt"}

	r, err := m.CreateRoom(c1)
	require.NoError(t, err)
	_, err = m.JoinRoom(c2, r.ID)
	require.NoError(t, err)

	// A room never holds more than two players
	_, err = m.JoinRoom(c3, r.ID)
	assert.ErrorIs(t, err, apperrors.ErrRoomFull)
	assert.Equal(t, 2, r.PlayerCount())
}

func TestManager_JoinRoom_SecondPlayerStartsGame(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	c1 := &testutil.SimpleClient{ID: "p1", Name: "Billy"}
	c2 := &testutil.SimpleClient{ID: "p2", Name: "Jesse"}

	r, err := m.CreateRoom(c1)
	require.NoError(t, err)

	_, err = m.JoinRoom(c2, r.ID)
	require.NoError(t, err)

	assert.NotNil(t, r.Stats["p2"])
	assert.Len(t, c1.MessagesOfType(protocol.MsgGameStart), 1)
	assert.Len(t, c2.MessagesOfType(protocol.MsgGameStart), 1)
}

func TestManager_DeleteRoom_Idempotent(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	c1 := &testutil.SimpleClient{ID: "p1", Name: "Billy"}

	r, err := m.CreateRoom(c1)
	require.NoError(t, err)

	m.DeleteRoom(r.ID)
	assert.Nil(t, m.GetRoom(r.ID))
	assert.Empty(t, c1.GetRoom())

	// Deleting an absent id is a no-op, not an error
	m.DeleteRoom(r.ID)
	m.DeleteRoom("nonexistent")
	assert.Equal(t, 0, m.RoomCount())
}

func TestManager_JoinRoom_ClosedRoomRejected(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	c1 := &testutil.SimpleClient{ID: "p1", Name: "Billy"}
	c2 := &testutil.SimpleClient{ID: "p2", Name: "Jesse"}

	r, err := m.CreateRoom(c1)
	require.NoError(t, err)

	// A stale reference to a deleted room must not accept joins
	m.DeleteRoom(r.ID)
	r.mu.Lock()
	m.rooms[r.ID] = r
	r.mu.Unlock()

	_, err = m.JoinRoom(c2, r.ID)
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestManager_HandlePlayerLeave_TearsDownRoom(t *testing.T) {
	t.Parallel()

	// Scenario: one of two connected players disconnects mid-round
	m := newTestManager()
	c1 := &testutil.SimpleClient{ID: "p1", Name: "Billy"}
	c2 := &testutil.SimpleClient{ID: "p2", Name: "Jesse"}
	r := newActiveRoom(m, "duel01", c1, c2)

	m.HandlePlayerLeave(c1)

	// The remaining player is notified, the leaver is not
	assert.Len(t, c2.MessagesOfType(protocol.MsgPlayerLeft), 1)
	assert.Empty(t, c1.MessagesOfType(protocol.MsgPlayerLeft))

	// Room is gone and both players are free to start a new duel
	assert.Nil(t, m.GetRoom(r.ID))
	assert.Empty(t, c1.GetRoom())
	assert.Empty(t, c2.GetRoom())
}

func TestManager_HandlePlayerLeave_BlocksLateSubmission(t *testing.T) {
	t.Parallel()

	// A submission parked on the room lock while playerLeft broadcasts must
	// not resolve a round of the torn-down duel.
	m := newTestManager()
	c1 := &testutil.SimpleClient{ID: "p1", Name: "Billy"}
	c2 := newGatedClient("p2", "Jesse", protocol.MsgPlayerLeft)
	r := newActiveRoom(m, "duel01", c1, c2)

	left := make(chan struct{})
	go func() {
		m.HandlePlayerLeave(c1)
		close(left)
	}()
	<-c2.reached // playerLeft broadcast in flight, room lock held

	submitted := make(chan struct{})
	go func() {
		m.SubmitWord(c2, r.ID, "sheriff")
		close(submitted)
	}()
	time.Sleep(20 * time.Millisecond) // let the submission park on the lock
	close(c2.release)
	<-left
	<-submitted

	assert.Empty(t, c2.MessagesOfType(protocol.MsgRoundEnd))
	assert.Empty(t, c2.MessagesOfType(protocol.MsgGameOver))
	assert.Equal(t, &PlayerStats{}, r.Stats["p2"])
	assert.Nil(t, m.GetRoom(r.ID))
}

func TestManager_HandlePlayerLeave_NotInRoom(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	c := &testutil.SimpleClient{ID: "p1", Name: "Billy"}

	// Must not panic or mutate anything
	m.HandlePlayerLeave(c)
	assert.Equal(t, 0, m.RoomCount())
}

func TestManager_GenerateRoomID_Unique(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		c := &testutil.SimpleClient{ID: string(rune('a' + i))}
		r, err := m.CreateRoom(c)
		require.NoError(t, err)
		assert.False(t, seen[r.ID], "room id %s generated twice", r.ID)
		seen[r.ID] = true
	}
}

func TestManager_RoomLifecycle_MockedClient(t *testing.T) {
	t.Parallel()

	// Verify the exact client contract of create + disconnect with a strict mock
	m := newTestManager()
	client := new(testutil.MockClient)
	client.On("GetID").Return("p1")
	client.On("GetName").Return("Billy")
	client.On("GetRoom").Return("").Once()
	client.On("SetRoom", mock.AnythingOfType("string")).Return()

	r, err := m.CreateRoom(client)
	require.NoError(t, err)
	client.AssertCalled(t, "SetRoom", r.ID)

	// Disconnect tears the room down and clears the seat
	client.On("GetRoom").Return(r.ID)
	m.HandlePlayerLeave(client)
	client.AssertCalled(t, "SetRoom", "")
	assert.Nil(t, m.GetRoom(r.ID))

	client.AssertExpectations(t)
	client.AssertNotCalled(t, "SendMessage", mock.Anything)
}

// newActiveRoom installs a two-player room already in the Active state,
// bypassing the countdown, the way the state machine would have armed it.
func newActiveRoom(m *Manager, id string, c1, c2 types.ClientInterface) *Room {
	r := &Room{
		ID:             id,
		State:          StateActive,
		Word:           "sheriff",
		Round:          1,
		RoundStartedAt: time.Now(),
		Players:        []string{c1.GetID(), c2.GetID()},
		Stats: map[string]*PlayerStats{
			c1.GetID(): {},
			c2.GetID(): {},
		},
		clients: map[string]types.ClientInterface{
			c1.GetID(): c1,
			c2.GetID(): c2,
		},
		CreatedAt:      time.Now(),
		countdownArmed: true,
	}
	c1.SetRoom(id)
	c2.SetRoom(id)

	m.mu.Lock()
	m.rooms[id] = r
	m.mu.Unlock()
	return r
}
