package model

import (
	"sort"
	"time"
)

// Project is the single in-memory page being built. The order field on each
// section is the source of truth for render sequence; SortSections keeps the
// slice position in agreement after every mutation.
type Project struct {
	ID        string        `json:"id" yaml:"id"`
	Name      string        `json:"name" yaml:"name"`
	Sections  []PageSection `json:"sections" yaml:"sections"`
	Theme     ThemeConfig   `json:"theme" yaml:"theme"`
	CreatedAt int64         `json:"createdAt" yaml:"createdAt"`
	UpdatedAt int64         `json:"updatedAt" yaml:"updatedAt"`
}

// NowMillis returns the current time in milliseconds since the epoch, the unit
// used for createdAt/updatedAt stamps.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// Touch stamps the project as modified.
func (p *Project) Touch() {
	p.UpdatedAt = NowMillis()
}

// SortSections orders the section slice by ascending order value.
func (p *Project) SortSections() {
	sort.SliceStable(p.Sections, func(i, j int) bool {
		return p.Sections[i].Order < p.Sections[j].Order
	})
}

// Section returns a pointer to the section with the given id, or nil.
func (p *Project) Section(id string) *PageSection {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return &p.Sections[i]
		}
	}
	return nil
}
