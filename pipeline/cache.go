package pipeline

import (
	"sync"

	"tuple-mapper/header"
	"tuple-mapper/model"
)

// Cache holds compiled pipelines keyed by header fingerprint, so equal
// descriptions coerced separately share one pipeline. A pipeline is only
// reused when its header carries the very same model values as the requested
// one.
type Cache struct {
	mu        sync.RWMutex
	pipelines map[string][]*Pipeline
	opts      []Option
}

// NewCache creates an empty cache compiling with opts.
func NewCache(opts ...Option) *Cache {
	return &Cache{
		pipelines: make(map[string][]*Pipeline),
		opts:      opts,
	}
}

// Get returns the pipeline for h, compiling it on first use.
func (c *Cache) Get(h *header.Header) (*Pipeline, error) {
	if h == nil {
		return nil, ErrNilHeader
	}

	key := h.Fingerprint()
	if key == "" {
		return Compile(h, c.opts...)
	}

	c.mu.RLock()
	p := lookup(c.pipelines[key], h)
	c.mu.RUnlock()

	if p != nil {
		return p, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if p := lookup(c.pipelines[key], h); p != nil {
		return p, nil
	}

	p, err := Compile(h, c.opts...)
	if err != nil {
		return nil, err
	}

	c.pipelines[key] = append(c.pipelines[key], p)

	return p, nil
}

// Len returns the number of cached pipelines.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, ps := range c.pipelines {
		n += len(ps)
	}

	return n
}

// Reset drops every cached pipeline.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pipelines = make(map[string][]*Pipeline)
}

func lookup(candidates []*Pipeline, h *header.Header) *Pipeline {
	for _, p := range candidates {
		if sameModels(p.header, h) {
			return p
		}
	}

	return nil
}

// sameModels compares the models of two headers with equal fingerprints,
// level by level.
func sameModels(a, b *header.Header) bool {
	if !model.Same(a.Model(), b.Model()) {
		return false
	}

	attrsA, attrsB := a.Attributes(), b.Attributes()
	if len(attrsA) != len(attrsB) {
		return false
	}

	for i := range attrsA {
		subA, subB := attrsA[i].Header, attrsB[i].Header
		if (subA == nil) != (subB == nil) {
			return false
		}

		if subA != nil && !sameModels(subA, subB) {
			return false
		}
	}

	return true
}
