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

package socket

import "sync/atomic"

// RunState is the single running/shutdown flag shared by the accept loop
// and every connection handler spawned from it. Shutdown is cooperative:
// clearing the flag does not interrupt a handler mid-command, it only
// stops it from reading the next one.
type RunState struct {
	running atomic.Bool
}

// NewRunState returns a RunState initialized to running.
func NewRunState() *RunState {
	s := &RunState{}
	s.running.Store(true)
	return s
}

// Running reports whether the process is still accepting new work.
func (s *RunState) Running() bool {
	return s.running.Load()
}

// Clear flips the flag to stopped. Idempotent.
func (s *RunState) Clear() {
	s.running.Store(false)
}
