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

// Package queue implements the single-queue FIFO: a singly linked list of
// owned Messages plus its own mutual-exclusion guard and cached size.
package queue

import "sync"

type node struct {
	msg  *Message
	next *node
}

// Body is one named queue's storage. The zero value is not usable; use
// NewBody. A Body is safe for concurrent use by multiple goroutines.
type Body struct {
	mu    sync.Mutex
	head  *node
	tail  *node
	count int
}

// NewBody returns an empty queue body.
func NewBody() *Body {
	return &Body{}
}

// Append adds msg at the tail. Constant time.
func (b *Body) Append(msg *Message) {
	n := &node{msg: msg}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.tail != nil {
		b.tail.next = n
		b.tail = n
	} else {
		b.head, b.tail = n, n
	}
	b.count++
}

// Pop removes and returns the head Message, or nil if the queue is empty.
// Constant time.
func (b *Body) Pop() *Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.head == nil {
		return nil
	}

	n := b.head
	b.head = n.next
	if b.head == nil {
		b.tail = nil
	}
	b.count--

	return n.msg
}

// Count returns the current number of messages in the queue.
func (b *Body) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Snapshot returns independent copies of up to limit messages starting at
// the head, in FIFO order, without modifying the queue. limit <= 0 means
// "all messages". The whole copy set is built before the lock is released
// and before any message is returned, so a caller never observes a
// truncated result that looks complete but isn't.
func (b *Body) Snapshot(limit int) []*Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.count
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]*Message, 0, n)
	cur := b.head
	for i := 0; i < n && cur != nil; i++ {
		out = append(out, cur.msg.Copy())
		cur = cur.next
	}

	return out
}
