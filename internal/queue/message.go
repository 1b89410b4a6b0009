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

package queue

// Message is an immutable, opaque byte payload owned exclusively by the
// QueueBody that holds it until it is popped or copied out by a snapshot.
// The broker never inspects or interprets the bytes.
type Message struct {
	body []byte
}

// NewMessage takes ownership of b and wraps it as a Message. Callers must
// not mutate b after the call.
func NewMessage(b []byte) *Message {
	return &Message{body: b}
}

// Len returns the authoritative length of the payload.
func (m *Message) Len() int {
	if m == nil {
		return 0
	}
	return len(m.body)
}

// Bytes returns the underlying payload. Callers that need to retain it
// beyond the current operation should copy it first.
func (m *Message) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.body
}

// Copy returns a Message wrapping an independent copy of the payload.
func (m *Message) Copy() *Message {
	if m == nil {
		return nil
	}
	cp := make([]byte, len(m.body))
	copy(cp, m.body)
	return &Message{body: cp}
}
