package room

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/palemoky/type-shooter/internal/apperrors"
	"github.com/palemoky/type-shooter/internal/config"
	"github.com/palemoky/type-shooter/internal/protocol"
	"github.com/palemoky/type-shooter/internal/types"
	"github.com/palemoky/type-shooter/internal/words"
)

// Manager 房间注册表，持有房间号到房间的映射。
// 所有房间的创建、查找、删除都经由 Manager，不存在包外共享状态。
type Manager struct {
	rooms map[string]*Room
	mu    sync.RWMutex

	cfg    config.GameConfig
	words  *words.Provider
	career types.CareerRecorder // 可为 nil（无 Redis 时跳过生涯记录）
}

// NewManager 创建房间管理器
func NewManager(cfg config.GameConfig, provider *words.Provider, career types.CareerRecorder) *Manager {
	return &Manager{
		rooms:  make(map[string]*Room),
		cfg:    cfg,
		words:  provider,
		career: career,
	}
}

// CreateRoom 创建房间，创建者作为一号玩家入座
func (m *Manager) CreateRoom(client types.ClientInterface) (*Room, error) {
	if client.GetRoom() != "" {
		return nil, apperrors.ErrAlreadyInRoom
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// 生成唯一房间号
	id := m.generateRoomID()

	r := &Room{
		ID:        id,
		State:     StateWaiting,
		Word:      m.words.Next(),
		Round:     1,
		Players:   make([]string, 0, maxPlayers),
		Stats:     make(map[string]*PlayerStats, maxPlayers),
		clients:   make(map[string]types.ClientInterface, maxPlayers),
		CreatedAt: time.Now(),
	}
	r.addPlayerLocked(client)
	client.SetRoom(id)

	m.rooms[id] = r

	log.Printf("🏠 房间 %s 已创建，玩家 %s", id, client.GetName())

	return r, nil
}

// JoinRoom 加入房间。第二名玩家就位后广播 gameStart 并启动倒计时。
func (m *Manager) JoinRoom(client types.ClientInterface, roomID string) (*Room, error) {
	if client.GetRoom() != "" {
		return nil, apperrors.ErrAlreadyInRoom
	}

	m.mu.RLock()
	r, exists := m.rooms[roomID]
	m.mu.RUnlock()
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, apperrors.ErrRoomNotFound
	}
	if len(r.Players) >= maxPlayers {
		r.mu.Unlock()
		return nil, apperrors.ErrRoomFull
	}

	r.addPlayerLocked(client)
	client.SetRoom(roomID)

	ready := len(r.Players) == maxPlayers
	if ready {
		r.State = StateCountdown
		r.Broadcast(protocol.MustNewMessage(protocol.MsgGameStart, nil))
	}
	r.mu.Unlock()

	log.Printf("👤 玩家 %s 加入房间 %s", client.GetName(), roomID)

	if ready {
		m.startCountdown(roomID)
	}

	return r, nil
}

// DeleteRoom 删除房间。删除不存在的房间号是 no-op。
func (m *Manager) DeleteRoom(roomID string) {
	m.mu.Lock()
	r, exists := m.rooms[roomID]
	if exists {
		delete(m.rooms, roomID)
	}
	m.mu.Unlock()

	if !exists {
		return
	}

	// 标记房间已关闭，并清除成员的房间引用，使其可以开始新对局
	r.mu.Lock()
	r.closed = true
	r.State = StateOver
	for _, client := range r.clients {
		client.SetRoom("")
	}
	r.mu.Unlock()

	log.Printf("🏠 房间 %s 已解散", roomID)
}

// GetRoom 获取房间，不存在时返回 nil。
// 返回的引用归注册表所有，任何等待之后都应按房间号重新获取。
func (m *Manager) GetRoom(roomID string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rooms[roomID]
}

// RoomCount 返回当前房间数
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// HandlePlayerLeave 玩家断开连接。所在房间无条件解散，不支持单人续局或重连。
func (m *Manager) HandlePlayerLeave(client types.ClientInterface) {
	roomID := client.GetRoom()
	if roomID == "" {
		return
	}

	r := m.GetRoom(roomID)
	if r == nil {
		client.SetRoom("")
		return
	}

	// 与广播同一次持锁内关闭房间，等锁的提交不会再结算一个已解散的对局
	r.mu.Lock()
	r.closed = true
	r.State = StateOver
	r.BroadcastExcept(client.GetID(), protocol.MustNewMessage(protocol.MsgPlayerLeft, nil))
	r.mu.Unlock()

	log.Printf("👋 玩家 %s 离开，房间 %s 解散", client.GetName(), roomID)

	m.DeleteRoom(roomID)
}

// generateRoomID 生成未占用的房间号。调用方需持有管理器写锁。
func (m *Manager) generateRoomID() string {
	buf := make([]byte, roomIDLength)
	for {
		for i := range buf {
			buf[i] = roomIDChars[rand.Intn(len(roomIDChars))]
		}
		id := string(buf)
		if _, taken := m.rooms[id]; !taken {
			return id
		}
	}
}
