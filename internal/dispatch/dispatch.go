// Package dispatch classifies chat input into a topic and answers it from the
// topic's template pool.
package dispatch

import (
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Topic is a classification bucket.
type Topic string

const (
	TopicMath       Topic = "math"
	TopicAnxiety    Topic = "anxiety"
	TopicDepression Topic = "depression"
	TopicFeelings   Topic = "feelings"
	TopicScience    Topic = "science"
	TopicDefault    Topic = "default"
)

// Classification is the outcome of Classify.
type Classification struct {
	Topic Topic
	Expr  *Expr // set for TopicMath
}

// Reply is a generated response.
type Reply struct {
	Topic Topic  `json:"topic"`
	Text  string `json:"text"`
}

var arithmetic = regexp.MustCompile(`\b(\d+)\s*([-+*/x×÷])\s*(\d+)\b`)

type keywordMatcher struct {
	topic    Topic
	keywords []string
}

// Checked in order after arithmetic; the first topic with a hit wins.
var keywordMatchers = []keywordMatcher{
	{TopicAnxiety, []string{"anxious", "anxiety", "worried", "worry", "nervous", "panic", "stress", "scared", "overwhelm"}},
	{TopicDepression, []string{"depressed", "depression", "hopeless", "worthless", "empty", "lonely", "alone", "sad", "unmotivated"}},
	{TopicFeelings, []string{"feel", "emotion", "mood", "upset", "angry", "mad", "frustrated", "happy"}},
	{TopicScience, []string{"why", "how does", "how do", "explain", "what is", "what are", "science", "fact", "tell me about"}},
}

// Classify picks exactly one topic for text.
func Classify(text string) Classification {
	lower := cases.Lower(language.Und).String(text)

	if expr, ok := findExpr(lower); ok {
		return Classification{Topic: TopicMath, Expr: &expr}
	}
	for _, km := range keywordMatchers {
		for _, kw := range km.keywords {
			if strings.Contains(lower, kw) {
				return Classification{Topic: km.topic}
			}
		}
	}
	return Classification{Topic: TopicDefault}
}

// findExpr returns the first arithmetic expression in s that is not part of
// a date such as 2024-01-05 or 1/5/2024.
func findExpr(s string) (Expr, bool) {
	for _, m := range arithmetic.FindAllStringSubmatchIndex(s, -1) {
		if dateSep(s[m[1]:]) || dateSepBefore(s[:m[0]]) {
			continue
		}
		if expr, ok := parseExpr(s[m[2]:m[3]], s[m[4]:m[5]], s[m[6]:m[7]]); ok {
			return expr, true
		}
	}
	return Expr{}, false
}

// dateSep reports whether rest starts with "-" or "/" and a digit.
func dateSep(rest string) bool {
	return len(rest) >= 2 && (rest[0] == '-' || rest[0] == '/') && isDigit(rest[1])
}

// dateSepBefore reports whether head ends with a digit and "-" or "/".
func dateSepBefore(head string) bool {
	n := len(head)
	return n >= 2 && (head[n-1] == '-' || head[n-1] == '/') && isDigit(head[n-2])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Dispatcher answers chat input. It is safe for concurrent use.
type Dispatcher struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Dispatcher drawing templates from rng.
func New(rng *rand.Rand) *Dispatcher {
	return &Dispatcher{rng: rng}
}

// Respond classifies text and returns a reply for it. It never fails.
func (d *Dispatcher) Respond(text string) Reply {
	c := Classify(text)
	if c.Topic == TopicMath && c.Expr != nil {
		return d.respondMath(*c.Expr)
	}
	return d.RespondTopic(c.Topic)
}

// RespondTopic returns a reply drawn from topic's templates. Unknown topics
// use the default pool.
func (d *Dispatcher) RespondTopic(topic Topic) Reply {
	pool, ok := templates[topic]
	if !ok || topic == TopicMath {
		topic, pool = TopicDefault, templates[TopicDefault]
	}
	text := d.pick(pool)
	if strings.Contains(text, "{fact}") {
		text = strings.ReplaceAll(text, "{fact}", d.pick(facts))
	}
	return Reply{Topic: topic, Text: text}
}

func (d *Dispatcher) respondMath(e Expr) Reply {
	result, ok := e.Eval()
	if !ok {
		return Reply{Topic: TopicMath, Text: divByZeroReply}
	}
	text := d.pick(templates[TopicMath])
	text = strings.ReplaceAll(text, "{expr}", e.String())
	text = strings.ReplaceAll(text, "{result}", result)
	return Reply{Topic: TopicMath, Text: text}
}

func (d *Dispatcher) pick(pool []string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return pool[d.rng.Intn(len(pool))]
}
