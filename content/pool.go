package content

import (
	"bytes"
	"encoding/json"
	"math/rand"

	"github.com/pkg/errors"
)

// Fallback lines used when a pool has nothing to offer. These match the
// character's voice and are returned instead of erroring out.
const (
	ReminderFallback     = "今日も頑張ろうぜ。お前なら大丈夫だ"
	AnnouncementFallback = "みんな、今日もお疲れさん！素晴らしい一日にしようぜ"
)

// Category is one named group of candidate messages.
type Category struct {
	Name     string
	Messages []string
}

// Pool is an ordered set of message categories. Category order follows the
// JSON declaration order so that seeded draws stay reproducible.
type Pool struct {
	categories []Category
	fallback   string
}

// NewPool returns an empty pool with the given fallback line.
func NewPool(fallback string) Pool {
	return Pool{fallback: fallback}
}

// UnmarshalJSON decodes a {"category": ["msg", ...], ...} object. A plain
// map would lose declaration order, so walk the tokens instead.
func (p *Pool) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "reading pool object")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("pool must be a JSON object of category -> messages")
	}

	p.categories = nil
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "reading category name")
		}
		name, ok := tok.(string)
		if !ok || name == "" {
			return errors.New("category names must be non-empty strings")
		}

		var messages []string
		if err := dec.Decode(&messages); err != nil {
			return errors.Wrapf(err, "reading messages for category %q", name)
		}
		p.categories = append(p.categories, Category{Name: name, Messages: messages})
	}
	return nil
}

// Categories returns the category names in declaration order.
func (p Pool) Categories() []string {
	names := make([]string, 0, len(p.categories))
	for _, c := range p.categories {
		names = append(names, c.Name)
	}
	return names
}

// Len is the total number of messages across all categories.
func (p Pool) Len() int {
	n := 0
	for _, c := range p.categories {
		n += len(c.Messages)
	}
	return n
}

// Pick draws one message uniformly at random. With a known category the
// draw is from that category only; otherwise from the union of every
// category. An empty result set degrades to the pool's fallback line.
func (p Pool) Pick(r *rand.Rand, category string) string {
	if category != "" {
		for _, c := range p.categories {
			if c.Name == category {
				return pickFrom(r, c.Messages, p.fallback)
			}
		}
	}

	var all []string
	for _, c := range p.categories {
		all = append(all, c.Messages...)
	}
	return pickFrom(r, all, p.fallback)
}

func pickFrom(r *rand.Rand, messages []string, fallback string) string {
	if len(messages) == 0 {
		return fallback
	}
	return messages[r.Intn(len(messages))]
}
