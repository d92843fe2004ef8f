package search

import "github.com/lumawell/kbsearch/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate scores and ranking
// decisions during search, e.g. for retrieval evaluation tooling.
type SearchMonitor interface {
	Start(query string)
	AfterDenseScores(scores []float32)
	AfterLexicalScores(scores []float32)
	AfterTopicInference(hint core.Topic, gated bool)
	AfterFusion(scores []float32)
	ThresholdFallback()
	Finish(results []*core.ScoredResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                           {}
func (n *noopMonitor) AfterDenseScores(_ []float32)             {}
func (n *noopMonitor) AfterLexicalScores(_ []float32)           {}
func (n *noopMonitor) AfterTopicInference(_ core.Topic, _ bool) {}
func (n *noopMonitor) AfterFusion(_ []float32)                  {}
func (n *noopMonitor) ThresholdFallback()                       {}
func (n *noopMonitor) Finish(_ []*core.ScoredResult)            {}
