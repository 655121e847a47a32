// Package ui 提供基于 Bubble Tea 的终端对决界面。
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/type-shooter/internal/network/client"
	"github.com/palemoky/type-shooter/internal/protocol"
	"github.com/palemoky/type-shooter/internal/sound"
)

// 游戏阶段
type GamePhase int

const (
	PhaseConnecting GamePhase = iota
	PhaseMenu
	PhaseJoinInput
	PhaseWaiting
	PhaseCountdown
	PhaseTyping
	PhaseRoundResult
	PhaseGameOver
	PhaseStats
	PhaseLeaderboard
)

// ServerMessage 服务器消息（用于 tea.Msg）
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectedMsg 连接成功消息
type ConnectedMsg struct{}

// ConnectionErrorMsg 连接错误消息
type ConnectionErrorMsg struct {
	Err error
}

// ClearErrorMsg 清除错误消息
type ClearErrorMsg struct{}

// OnlineModel 联网对决的 model
type OnlineModel struct {
	client *client.Client
	phase  GamePhase
	error  string
	notice string

	// 玩家信息
	playerID   string
	playerName string

	// 对局状态
	roomID      string
	round       int
	word        string
	countdown   int
	duelStats   map[string]protocol.PlayerStatsInfo
	roundWinner string
	timeToShoot string
	duelWinner  string
	finalWord   string

	// 生涯数据
	career      *protocol.CareerInfo
	leaderboard []protocol.LeaderboardEntry

	// Audio
	soundManager *sound.SoundManager

	// UI 组件
	input  textinput.Model
	width  int
	height int
}

// NewOnlineModel 创建联网模式 model
func NewOnlineModel(serverURL string) *OnlineModel {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()

	return &OnlineModel{
		client:       client.NewClient(serverURL),
		phase:        PhaseConnecting,
		input:        ti,
		duelStats:    make(map[string]protocol.PlayerStatsInfo),
		soundManager: sound.NewSoundManager(),
	}
}

func (m *OnlineModel) Init() tea.Cmd {
	// Initialize sound
	go func() {
		_ = m.soundManager.Init()
	}()

	return tea.Batch(
		m.connectToServer(),
		textinput.Blink,
	)
}

// connectToServer 连接服务器
func (m *OnlineModel) connectToServer() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ConnectedMsg{}
	}
}

// listenForMessages 监听服务器消息
func (m *OnlineModel) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.client.Receive()
		if err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ServerMessage{Msg: msg}
	}
}

func (m *OnlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		handled, returnCmd := m.handleKeyPress(msg)
		if handled {
			return m, returnCmd
		}

	case ConnectedMsg:
		m.phase = PhaseMenu
		m.playerID = m.client.PlayerID
		m.playerName = m.client.PlayerName
		m.soundManager.Play(sound.SoundSaloon)
		// 开始监听消息
		cmds = append(cmds, m.listenForMessages())

	case ConnectionErrorMsg:
		if m.phase == PhaseConnecting {
			m.error = fmt.Sprintf("无法连接到服务器: %v\n\n按 ESC 退出", msg.Err)
		} else {
			m.error = "连接已断开，按 ESC 退出"
		}

	case ClearErrorMsg:
		m.error = ""

	case ServerMessage:
		cmd = m.handleServerMessage(msg.Msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		// 继续监听
		if m.client.IsConnected() {
			cmds = append(cmds, m.listenForMessages())
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress 处理按键消息，返回是否已处理和命令
func (m *OnlineModel) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.client.Close()
		return true, tea.Quit

	case tea.KeyEsc:
		switch m.phase {
		case PhaseConnecting, PhaseMenu:
			m.client.Close()
			return true, tea.Quit
		case PhaseJoinInput, PhaseStats, PhaseLeaderboard:
			m.backToMenu()
			return true, nil
		}
		// 对局中 ESC 即认输离场：断开连接，服务器会解散房间
		m.client.Close()
		return true, tea.Quit

	case tea.KeyEnter:
		return true, m.handleEnter()
	}

	return false, nil
}

// handleEnter 处理回车
func (m *OnlineModel) handleEnter() tea.Cmd {
	value := m.input.Value()
	m.input.SetValue("")

	switch m.phase {
	case PhaseMenu:
		return m.handleMenuChoice(value)

	case PhaseJoinInput:
		if value == "" {
			return nil
		}
		m.roomID = value
		if err := m.client.JoinGame(value); err != nil {
			m.error = fmt.Sprintf("加入对局失败: %v", err)
		}
		return nil

	case PhaseTyping:
		if value == "" {
			return nil
		}
		if err := m.client.SubmitWord(m.roomID, value); err != nil {
			m.error = fmt.Sprintf("提交失败: %v", err)
		}
		return nil

	case PhaseGameOver:
		m.backToMenu()
		return nil
	}

	return nil
}

// handleMenuChoice 处理主菜单选择
func (m *OnlineModel) handleMenuChoice(choice string) tea.Cmd {
	m.error = ""
	m.notice = ""

	switch choice {
	case "1":
		if err := m.client.CreateGame(); err != nil {
			m.error = fmt.Sprintf("创建对局失败: %v", err)
		}
	case "2":
		m.phase = PhaseJoinInput
	case "3":
		if err := m.client.GetStats(); err != nil {
			m.error = fmt.Sprintf("查询战绩失败: %v", err)
		}
	case "4":
		if err := m.client.GetLeaderboard(10); err != nil {
			m.error = fmt.Sprintf("查询排行榜失败: %v", err)
		}
	case "q":
		m.client.Close()
		return tea.Quit
	}
	return nil
}

// backToMenu 重置对局状态并返回主菜单
func (m *OnlineModel) backToMenu() {
	m.phase = PhaseMenu
	m.roomID = ""
	m.round = 0
	m.word = ""
	m.countdown = 0
	m.duelStats = make(map[string]protocol.PlayerStatsInfo)
	m.roundWinner = ""
	m.timeToShoot = ""
	m.duelWinner = ""
	m.finalWord = ""
	m.error = ""
	m.input.SetValue("")
}
