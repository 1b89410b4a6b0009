/*
 * MIT License
 *
 * Copyright (c) 2026 tinyq contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package registry is the process-wide directory mapping queue names to
// queue.Body instances. At most one Body exists per name for the life of
// the process; nothing is ever removed.
package registry

import (
	"sync"

	"github.com/rodakd/tinyq/internal/limits"
	"github.com/rodakd/tinyq/internal/queue"
)

// Registry is safe for concurrent use. The zero value is not usable; use
// New.
type Registry struct {
	mu sync.RWMutex
	m  map[string]*queue.Body
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{m: make(map[string]*queue.Body)}
}

// Locate returns the queue.Body named name. With createIfMissing true, a
// new empty Body is created and inserted atomically if none exists yet.
// With createIfMissing false, an unknown name returns (nil, false) and the
// registry is left unchanged.
//
// A lookup runs under the registry's read lock; on a miss with
// createIfMissing true, the write lock is taken and the name is checked
// again before inserting, so concurrent callers all get the same Body.
// The registry's guard is released before the caller touches the returned
// Body's queue guard; the two guards are never held together.
func (r *Registry) Locate(name string, createIfMissing bool) (*queue.Body, bool) {
	if len(name) == 0 || len(name) > limits.MaxQueueNameBytes {
		return nil, false
	}

	r.mu.RLock()
	b, ok := r.m[name]
	r.mu.RUnlock()

	if ok || !createIfMissing {
		return b, ok
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok = r.m[name]; ok {
		return b, true
	}

	b = queue.NewBody()
	r.m[name] = b
	return b, true
}

// Len reports how many distinct queues have been created so far. Intended
// for diagnostics and tests, not for any wire-protocol operation.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}
