// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package registry

import "sync"

// Progress counts scanned files against the total found by the directory
// walk. The total is published once, before any file is parsed.
type Progress struct {
	mu      sync.Mutex
	scanned uint32
	total   uint32
}

// NewProgress starts at 0 of 1 so the fraction reads as zero until the
// walk has counted the real total.
func NewProgress() *Progress {
	return &Progress{total: 1}
}

// SetTotal publishes the number of files that will be processed.
func (p *Progress) SetTotal(total uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = total
	p.scanned = 0
}

// Advance records one processed file.
func (p *Progress) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.scanned < p.total {
		p.scanned++
	}
}

// Get returns (scanned, total).
func (p *Progress) Get() (uint32, uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.scanned, p.total
}

// Fraction returns scanned/total in [0, 1]. An empty walk counts as done.
func (p *Progress) Fraction() float64 {
	scanned, total := p.Get()
	if total == 0 {
		return 1
	}

	return float64(scanned) / float64(total)
}

// Done reports whether every counted file has been processed.
func (p *Progress) Done() bool {
	scanned, total := p.Get()

	return scanned >= total
}
