package persona

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// taskTemplates binds one task keyword to its candidate phrasings. The
// withWhere templates take the location as their single argument; the
// noWhere templates are complete lines.
type taskTemplates struct {
	keyword   string
	withWhere []string
	noWhere   []string
}

// knownTasks is an ordered list: the first keyword found inside the task
// text wins, so declaration order is the match priority. Matching is a
// plain case-sensitive substring check, no normalization.
var knownTasks = []taskTemplates{
	{
		keyword: "洗濯",
		withWhere: []string{
			"%sで洗濯の時間だぞ。洗濯物を畳んでしまっておけよ",
			"おう、%sの洗濯物の片付けを忘れるなよ。きれいに畳んでくれ",
		},
		noWhere: []string{
			"洗濯の時間だぞ。洗濯物を畳んでしまっておけよ",
			"おう、洗濯物の片付けを忘れるなよ。きれいに畳んでくれ",
		},
	},
	{
		keyword: "皿洗い",
		withWhere: []string{
			"%sで皿洗いの時間だ。きれいにしておこうぜ",
			"おい、%sのお皿が溜まってないか？洗って片付けろよ",
		},
		noWhere: []string{
			"皿洗いの時間だ。キッチンをきれいにしておこうぜ",
			"おい、お皿が溜まってないか？洗って片付けろよ",
		},
	},
	{
		keyword: "掃除",
		withWhere: []string{
			"%sの掃除の時間だぞ。きれいにして気分もすっきりさせろ",
			"%sを掃除して環境を整えろ。きれいな場所は心も軽くするからな",
		},
		noWhere: []string{
			"掃除の時間だぞ。部屋をきれいにして気分もすっきりさせろ",
			"掃除をして環境を整えろ。きれいな部屋は心も軽くするからな",
		},
	},
}

// genericWithWhere templates take (where, task) in that order.
var genericWithWhere = []string{
	"%sで%sの時間だぞ。忘れずにやっておけよ",
	"おう、%sの%sを忘れてないか？やっておいてくれ",
	"%sで%sの時間だ。お前ならちゃんとできるからな",
}

// genericNoWhere templates take the task only.
var genericNoWhere = []string{
	"%sの時間だぞ。忘れずにやっておけよ",
	"おう、%sを忘れてないか？やっておいてくれ",
	"%sの時間だ。お前ならちゃんとできるからな",
}

// Engine turns a raw task description into the character's voice.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns an engine. A nil rng gets a time-seeded source; inject a
// seeded one to make draws reproducible.
func New(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// Personalize maps a task (and optional location) to a persona-voiced
// phrase. Known task keywords get a dedicated phrasing, anything else a
// generic one built from the task text itself. Never fails.
func (e *Engine) Personalize(task, where string) string {
	for _, t := range knownTasks {
		if !strings.Contains(task, t.keyword) {
			continue
		}
		if where != "" {
			return fmt.Sprintf(e.pick(t.withWhere), where)
		}
		return e.pick(t.noWhere)
	}

	if where != "" {
		return fmt.Sprintf(e.pick(genericWithWhere), where, task)
	}
	return fmt.Sprintf(e.pick(genericNoWhere), task)
}

func (e *Engine) pick(candidates []string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return candidates[e.rng.Intn(len(candidates))]
}
