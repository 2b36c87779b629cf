package persona

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEngine() *Engine {
	return New(rand.New(rand.NewSource(1)))
}

func TestPersonalizeKeywordWithLocation(t *testing.T) {
	e := newTestEngine()
	want := []string{
		"homeで洗濯の時間だぞ。洗濯物を畳んでしまっておけよ",
		"おう、homeの洗濯物の片付けを忘れるなよ。きれいに畳んでくれ",
	}
	for i := 0; i < 20; i++ {
		assert.Contains(t, want, e.Personalize("洗濯 at home", "home"))
	}
}

func TestPersonalizeKeywordWithoutLocation(t *testing.T) {
	e := newTestEngine()
	want := []string{
		"皿洗いの時間だ。キッチンをきれいにしておこうぜ",
		"おい、お皿が溜まってないか？洗って片付けろよ",
	}
	for i := 0; i < 20; i++ {
		assert.Contains(t, want, e.Personalize("皿洗いをする", ""))
	}
}

func TestPersonalizeFirstKeywordWins(t *testing.T) {
	e := newTestEngine()
	// 洗濯 is declared before 掃除, so its templates win even when both
	// keywords appear in the task.
	want := []string{
		"洗濯の時間だぞ。洗濯物を畳んでしまっておけよ",
		"おう、洗濯物の片付けを忘れるなよ。きれいに畳んでくれ",
	}
	for i := 0; i < 20; i++ {
		assert.Contains(t, want, e.Personalize("掃除と洗濯", ""))
	}
}

func TestPersonalizeGenericWithoutLocation(t *testing.T) {
	e := newTestEngine()
	want := []string{
		"walk the dogの時間だぞ。忘れずにやっておけよ",
		"おう、walk the dogを忘れてないか？やっておいてくれ",
		"walk the dogの時間だ。お前ならちゃんとできるからな",
	}
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		got := e.Personalize("walk the dog", "")
		assert.Contains(t, want, got)
		seen[got] = true
	}
	assert.Len(t, seen, 3, "all three generic templates should be reachable")
}

func TestPersonalizeGenericWithLocation(t *testing.T) {
	e := newTestEngine()
	want := []string{
		"公園でジョギングの時間だぞ。忘れずにやっておけよ",
		"おう、公園のジョギングを忘れてないか？やっておいてくれ",
		"公園でジョギングの時間だ。お前ならちゃんとできるからな",
	}
	for i := 0; i < 20; i++ {
		assert.Contains(t, want, e.Personalize("ジョギング", "公園"))
	}
}

func TestPersonalizeNeverPanicsOnEmptyInput(t *testing.T) {
	e := newTestEngine()
	assert.NotEmpty(t, e.Personalize("", ""))
}
