package topic

import (
	"strings"

	"github.com/lumawell/kbsearch/core"
)

// Classifier assigns topics to knowledge-base sources at index time and
// infers an optional topic hint from a query at search time. The two
// rulesets are independent: source names are classified by filename
// conventions, queries by their vocabulary.
//
// Implementations must be safe for concurrent use.
type Classifier interface {
	// TopicOf returns the topic for a source file name.
	// Unrecognized sources map to core.TopicGeneral.
	TopicOf(sourceName string) core.Topic

	// InferHint inspects a query and returns a topic hint when the
	// query clearly belongs to one topic. The second return value is
	// false when no hint applies, which disables topic gating for
	// that query.
	InferHint(query string) (core.Topic, bool)
}

// KeywordClassifier is the default Classifier, driven by two hardcoded
// keyword tables. The query table carries both English and Chinese
// keywords because the knowledge base serves a mixed-language audience.
type KeywordClassifier struct{}

var _ Classifier = (*KeywordClassifier)(nil)

// NewKeywordClassifier creates the default keyword-based classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// TopicOf classifies a source by substrings of its lowercased name.
func (c *KeywordClassifier) TopicOf(sourceName string) core.Topic {
	n := strings.ToLower(sourceName)
	switch {
	case strings.Contains(n, "skin") || strings.Contains(n, "care"):
		return core.TopicSkincare
	case strings.Contains(n, "exercise") || strings.Contains(n, "train"):
		return core.TopicExercise
	case strings.Contains(n, "diet") || strings.Contains(n, "nutri"):
		return core.TopicDiet
	case strings.Contains(n, "sleep"):
		return core.TopicSleep
	case strings.Contains(n, "psychology"):
		return core.TopicPsychology
	default:
		return core.TopicGeneral
	}
}

// queryKeywords maps each topic to the substrings that mark a query as
// belonging to it. Order matters: the first topic with a hit wins.
var queryKeywords = []struct {
	topic    core.Topic
	keywords []string
}{
	{core.TopicSkincare, []string{
		"skincare", "skin care", "acne", "sunscreen", "retinol", "niacinamide",
		"salicylic", "moistur", "sensitive skin", "whitening", "peeling",
		"护肤", "痘", "闭口", "美白", "a醇", "果酸", "vc", "防晒", "敏感肌",
		"水杨酸", "脱皮", "干燥", "起皮",
	}},
	{core.TopicExercise, []string{
		"workout", "training", "strength", "muscle", "cardio", "hiit",
		"running", "exercise", "stretch", "recovery",
		"训练", "力量", "肌肉", "有氧", "跑步", "运动", "拉伸", "恢复",
	}},
	{core.TopicDiet, []string{
		"diet", "calorie", "tdee", "protein", "carb", "fat loss", "cutting",
		"bulking", "nutrition", "macros",
		"饮食", "热量", "蛋白", "碳水", "脂肪", "减脂", "增肌", "营养",
	}},
	{core.TopicSleep, []string{
		"sleep", "insomnia", "circadian", "bedtime",
		"睡眠", "失眠", "作息", "生物钟",
	}},
	{core.TopicPsychology, []string{
		"mood", "stress", "anxiety", "discipline", "psychology", "motivation",
		"情绪", "压力", "焦虑", "自律", "心理",
	}},
}

// InferHint scans the lowercased query for topic keywords.
func (c *KeywordClassifier) InferHint(query string) (core.Topic, bool) {
	q := strings.ToLower(query)
	for _, entry := range queryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(q, keyword) {
				return entry.topic, true
			}
		}
	}
	return "", false
}
