package recommend

import "github.com/poiesic/issuescout/core"

// Monitor provides hooks to observe the recommendation process.
// Implement this interface to track intermediate steps and results.
type Monitor interface {
	Start(req *core.Request)
	AfterLanguageDetection(language string)
	AfterExperienceClassification(level core.ExperienceLevel)
	CacheHit(language string, topN int, count int)
	AfterFetch(issues []core.Issue)
	Finish(result *Result)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.Request)                                {}
func (n *noopMonitor) AfterLanguageDetection(_ string)                      {}
func (n *noopMonitor) AfterExperienceClassification(_ core.ExperienceLevel) {}
func (n *noopMonitor) CacheHit(_ string, _ int, _ int)                      {}
func (n *noopMonitor) AfterFetch(_ []core.Issue)                            {}
func (n *noopMonitor) Finish(_ *Result)                                     {}
