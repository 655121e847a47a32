package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- 视图渲染 ---

func (m *OnlineModel) View() string {
	var view string

	switch m.phase {
	case PhaseConnecting:
		view = m.connectingView()
	case PhaseMenu:
		view = m.menuView()
	case PhaseJoinInput:
		view = m.joinInputView()
	case PhaseWaiting:
		view = m.waitingView()
	case PhaseCountdown:
		view = m.countdownView()
	case PhaseTyping:
		view = m.typingView()
	case PhaseRoundResult:
		view = m.roundResultView()
	case PhaseGameOver:
		view = m.gameOverView()
	case PhaseStats:
		view = m.statsView()
	case PhaseLeaderboard:
		view = m.leaderboardView()
	}

	return view
}

func (m *OnlineModel) connectingView() string {
	if m.error != "" {
		return errorStyle.Render(m.error)
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render("🔌 正在连接服务器...")
}

func (m *OnlineModel) menuView() string {
	var sb strings.Builder

	title := titleStyle("🤠 TYPE SHOOTER · 拔枪吧打字侠")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	if m.playerName != "" {
		welcome := fmt.Sprintf("欢迎, %s!", m.playerName)
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, welcome))
		sb.WriteString("\n\n")
	}

	menu := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"请选择:",
		"",
		"  1. 发起决斗",
		"  2. 加入决斗",
		"  3. 我的战绩",
		"  4. 排行榜",
		"",
		dimStyle.Render("  q. 退出"),
	))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menu))
	sb.WriteString("\n\n")

	m.input.Placeholder = "输入选项 (1-4)"
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.input.View()))

	if m.notice != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, dimStyle.Render(m.notice)))
	}
	if m.error != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, errorStyle.Render(m.error)))
	}

	return sb.String()
}

func (m *OnlineModel) joinInputView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle("🔫 加入决斗"))
	sb.WriteString("\n\n")

	m.input.Placeholder = "输入房间号..."
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("Enter 加入 · ESC 返回"))

	if m.error != "" {
		sb.WriteString("\n\n")
		sb.WriteString(errorStyle.Render(m.error))
	}

	return sb.String()
}

func (m *OnlineModel) waitingView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle("🏜️ 等待对手..."))
	sb.WriteString("\n\n")
	sb.WriteString(boxStyle.Render(fmt.Sprintf("房间号: %s", wordStyle.Render(m.roomID))))
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("把房间号发给你的对手 · ESC 退出"))

	return sb.String()
}

func (m *OnlineModel) countdownView() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("第 %d 回合\n\n", m.round))

	if m.countdown > 0 {
		big := countdownStyle.Render(fmt.Sprintf("  %d  ", m.countdown))
		sb.WriteString(boxStyle.Render(big))
		sb.WriteString("\n\n")
		sb.WriteString(dimStyle.Render("手放在键盘上，单词出现立即输入！"))
	} else {
		sb.WriteString(dimStyle.Render("准备..."))
	}

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, sb.String())
}

func (m *OnlineModel) typingView() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("第 %d 回合 · 房间 %s\n\n", m.round, m.roomID))
	sb.WriteString(boxStyle.Render("🎯 " + wordStyle.Render(m.word)))
	sb.WriteString("\n\n")

	m.input.Placeholder = "照着输入，按 Enter 开枪"
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderDuelStats())

	if m.error != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(m.error))
	}

	return sb.String()
}

func (m *OnlineModel) roundResultView() string {
	var sb strings.Builder

	if m.roundWinner == m.playerID {
		sb.WriteString(winStyle.Render(fmt.Sprintf("💥 你赢了这一回合！用时 %s 秒", m.timeToShoot)))
	} else {
		sb.WriteString(loseStyle.Render(fmt.Sprintf("😵 对手先开枪了 (%s 秒)", m.timeToShoot)))
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.renderDuelStats())
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("下一回合即将开始..."))

	return sb.String()
}

func (m *OnlineModel) gameOverView() string {
	var sb strings.Builder

	if m.duelWinner == m.playerID {
		sb.WriteString(winStyle.Render("🏆 你赢下了这场决斗！"))
	} else {
		sb.WriteString(loseStyle.Render("🪦 你倒下了，下次再来"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("最后的单词: %s · 制胜用时 %s 秒\n\n", wordStyle.Render(m.finalWord), m.timeToShoot))
	sb.WriteString(m.renderDuelStats())
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("Enter 返回主菜单 · ESC 退出"))

	return sb.String()
}

// renderDuelStats 渲染当前对局比分
func (m *OnlineModel) renderDuelStats() string {
	if len(m.duelStats) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("比分:\n")
	for id, s := range m.duelStats {
		name := "对手"
		if id == m.playerID {
			name = "你"
		}
		line := fmt.Sprintf("  %s: %d 胜 / %d 回合", name, s.Wins, s.TotalGames)
		if s.FastestWin > 0 {
			line += fmt.Sprintf("  (最快 %.2f 秒)", float64(s.FastestWin)/1000)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func (m *OnlineModel) statsView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle("📊 我的战绩"))
	sb.WriteString("\n\n")

	if m.career == nil {
		sb.WriteString(dimStyle.Render("还没有完成过决斗，先去打一场吧！"))
	} else {
		c := m.career
		winRate := 0.0
		if c.DuelsPlayed > 0 {
			winRate = float64(c.DuelsWon) / float64(c.DuelsPlayed) * 100
		}
		bestStr := "—"
		if c.BestTimeMs > 0 {
			bestStr = fmt.Sprintf("%.2f 秒", float64(c.BestTimeMs)/1000)
		}
		sb.WriteString(boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("积分: %d", c.Score),
			fmt.Sprintf("决斗: %d 胜 / %d 场 (%.1f%%)", c.DuelsWon, c.DuelsPlayed, winRate),
			fmt.Sprintf("回合胜场: %d", c.RoundsWon),
			fmt.Sprintf("最快出枪: %s", bestStr),
		)))
	}

	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("ESC 返回"))

	return sb.String()
}

func (m *OnlineModel) leaderboardView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle("🏆 排行榜 TOP 10"))
	sb.WriteString("\n\n")

	if len(m.leaderboard) == 0 {
		sb.WriteString(dimStyle.Render("榜上无人，虚位以待"))
	} else {
		var rows strings.Builder
		rows.WriteString(fmt.Sprintf("%-4s %-14s %8s %6s\n", "排名", "玩家", "积分", "胜场"))
		rows.WriteString(strings.Repeat("─", 40) + "\n")
		for _, e := range m.leaderboard {
			rankIcon := ""
			switch e.Rank {
			case 1:
				rankIcon = "🥇"
			case 2:
				rankIcon = "🥈"
			case 3:
				rankIcon = "🥉"
			default:
				rankIcon = fmt.Sprintf("%2d.", e.Rank)
			}
			rows.WriteString(fmt.Sprintf("%-4s %-14s %8d %6d\n",
				rankIcon, truncateName(e.PlayerName, 12), e.Score, e.DuelsWon))
		}
		sb.WriteString(boxStyle.Render(rows.String()))
	}

	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("ESC 返回"))

	return sb.String()
}

// truncateName 截断过长的玩家名
func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-1]) + "…"
}
