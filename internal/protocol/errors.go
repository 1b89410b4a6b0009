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

package protocol

import "errors"

// Sentinel errors whose Error() string is exactly the <reason> that
// follows "ERR " on the wire. WriteErr uses this text directly, so there
// is no separate string table to keep in sync with these values.
var (
	ErrUnknownCommand = errors.New("Unknown command")
	ErrMissingName    = errors.New("Missing queue name")
	ErrInvalidLength  = errors.New("Invalid message length")
	ErrCommandTooLong = errors.New("Invalid command")
	ErrQueueEmpty     = errors.New("Queue empty")
)

// ErrPayloadDesync wraps a read failure that happened after an ENQUEUE's
// length header was already parsed and payload bytes had begun being
// consumed from the stream. It is the one protocol-level failure that
// cannot be answered with an ERR line and resynchronized; the connection
// handler closes the connection instead of replying.
type ErrPayloadDesync struct {
	Err error
}

func (e *ErrPayloadDesync) Error() string {
	return "payload desync: " + e.Err.Error()
}

func (e *ErrPayloadDesync) Unwrap() error {
	return e.Err
}

// IsProtocolError reports whether err is one of the recoverable framing
// errors ReadRequest returns — the ones answered with an ERR line while
// the connection stays open, as opposed to a transport failure or an
// ErrPayloadDesync.
func IsProtocolError(err error) bool {
	switch {
	case errors.Is(err, ErrUnknownCommand),
		errors.Is(err, ErrMissingName),
		errors.Is(err, ErrInvalidLength),
		errors.Is(err, ErrCommandTooLong):
		return true
	default:
		return false
	}
}
