// Package words 提供回合目标单词的随机选取。
package words

import "math/rand"

// 西部主题词库
var western = []string{
	// 经典西部元素
	"sheriff", "wanted", "bounty", "outlaw", "saloon",
	"cowboy", "desert", "duel", "ranch", "horse",
	"bandit", "deputy", "cattle", "sunset", "cactus",
	"lasso", "boots", "spurs", "saddle", "rifle",

	// 更多西部词汇
	"frontier", "homestead", "stagecoach", "corral", "mustang",
	"tumbleweed", "campfire", "canyon", "prairie", "rodeo",
	"gunslinger", "marshal", "rustler", "stampede", "wagon",
	"windmill", "hideout", "tavern", "gold", "mine",

	// 西部地貌
	"mountain", "valley", "plateau", "gulch", "mesa",
	"butte", "ravine", "creek", "trail", "oasis",

	// 西部活动
	"roundup", "showdown", "ambush", "shootout", "tracking",
	"hunting", "roping", "wrangling", "mining", "trading",

	// 西部装备
	"holster", "bandana", "chaps", "poncho", "stirrup",
	"canteen", "revolver", "shotgun", "dynamite", "rope",
}

// Provider 单词提供器
type Provider struct {
	words []string
}

// NewProvider 创建单词提供器，不传参数时使用内置西部词库
func NewProvider(words ...string) *Provider {
	if len(words) == 0 {
		words = western
	}
	return &Provider{words: words}
}

// Next 均匀随机返回一个单词。允许连续回合重复。
func (p *Provider) Next() string {
	return p.words[rand.Intn(len(p.words))]
}

// Count 返回词库大小
func (p *Provider) Count() int {
	return len(p.words)
}
