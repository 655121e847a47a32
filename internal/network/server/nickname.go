package server

import (
	"math/rand"
)

// 昵称词库（西部主题）
var (
	adjectives = []string{
		"神速的", "冷酷的", "沉稳的", "孤独的", "狡猾的",
		"彪悍的", "沙哑的", "潇洒的", "老练的", "鲁莽的",
		"机警的", "落魄的", "傲慢的", "神秘的", "风尘仆仆的",
	}

	nouns = []string{
		"警长", "牛仔", "赏金猎人", "神枪手", "亡命徒",
		"副警长", "牧场主", "淘金客", "驿站车夫", "独行侠",
		"快枪手", "游侠", "酒保", "铁匠", "牧牛人",
	}
)

// GenerateNickname 生成随机昵称
func GenerateNickname() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return adj + noun
}
