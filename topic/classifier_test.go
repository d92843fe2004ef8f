package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumawell/kbsearch/core"
)

func TestTopicOf(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name     string
		source   string
		expected core.Topic
	}{
		{"skincare by skin", "skin-basics.md", core.TopicSkincare},
		{"skincare by care", "morning-care.md", core.TopicSkincare},
		{"exercise by name", "exercise-program.md", core.TopicExercise},
		{"exercise by training", "strength-training.md", core.TopicExercise},
		{"diet by name", "diet-basics.md", core.TopicDiet},
		{"diet by nutrition", "nutrition-guide.md", core.TopicDiet},
		{"sleep", "sleep-hygiene.md", core.TopicSleep},
		{"psychology", "psychology-stress.md", core.TopicPsychology},
		{"uppercase source", "DIET.MD", core.TopicDiet},
		{"unrecognized falls back", "random-notes.md", core.TopicGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.TopicOf(tt.source))
		})
	}
}

func TestInferHint(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name     string
		query    string
		expected core.Topic
		hinted   bool
	}{
		{"english diet", "daily protein intake for fat loss", core.TopicDiet, true},
		{"english skincare", "which sunscreen for sensitive skin", core.TopicSkincare, true},
		{"english exercise", "strength workout for beginners", core.TopicExercise, true},
		{"english sleep", "fixing my circadian rhythm", core.TopicSleep, true},
		{"english psychology", "dealing with stress at work", core.TopicPsychology, true},
		{"chinese diet", "减脂期间怎么吃", core.TopicDiet, true},
		{"chinese skincare", "敏感肌怎么防晒", core.TopicSkincare, true},
		{"uppercase query", "PROTEIN shakes", core.TopicDiet, true},
		{"no hint", "what is the meaning of life", "", false},
		{"empty query", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, hinted := c.InferHint(tt.query)
			assert.Equal(t, tt.hinted, hinted)
			assert.Equal(t, tt.expected, topic)
		})
	}
}

func TestInferHint_FirstTopicWins(t *testing.T) {
	c := NewKeywordClassifier()

	// Query mentions both skincare and diet keywords; the skincare
	// table is consulted first.
	topic, hinted := c.InferHint("sunscreen and protein")
	assert.True(t, hinted)
	assert.Equal(t, core.TopicSkincare, topic)
}
