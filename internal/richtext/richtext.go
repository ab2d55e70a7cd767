// Package richtext sanitizes user-authored HTML (profile pages, cover
// letters, workshop pages) before it is stored or rendered.
package richtext

import (
	"github.com/microcosm-cc/bluemonday"
)

type Sanitizer interface {
	Sanitize(raw string) string
}

// Policy keeps basic formatting, links, lists, tables and images and drops
// scripts, event handlers and styles.
type Policy struct {
	p *bluemonday.Policy
}

func New() *Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return &Policy{p: p}
}

func (s *Policy) Sanitize(raw string) string {
	return s.p.Sanitize(raw)
}
