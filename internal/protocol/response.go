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

import (
	"bufio"
	"fmt"

	"github.com/rodakd/tinyq/internal/queue"
)

// WriteOK writes the bare "OK\n" frame used by a successful ENQUEUE, and
// flushes.
func WriteOK(w *bufio.Writer) error {
	if _, err := w.WriteString("OK\n"); err != nil {
		return err
	}
	return w.Flush()
}

// WriteMessage writes "OK <len>\n" followed by the raw payload bytes with
// no trailing newline, and flushes. Used by a successful DEQUEUE.
func WriteMessage(w *bufio.Writer, msg *queue.Message) error {
	if _, err := fmt.Fprintf(w, "OK %d\n", msg.Len()); err != nil {
		return err
	}
	if _, err := w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Flush()
}

// WriteList writes "OK <n>\n" followed by, for each message in FIFO
// order, "<len>\n" and the raw body with no trailing newline, and flushes
// once after the whole frame. Every message has already been copied out
// of the queue by the time this is called, so a partial write here is a
// transport failure, never a torn protocol response.
func WriteList(w *bufio.Writer, msgs []*queue.Message) error {
	if _, err := fmt.Fprintf(w, "OK %d\n", len(msgs)); err != nil {
		return err
	}
	for _, m := range msgs {
		if _, err := fmt.Fprintf(w, "%d\n", m.Len()); err != nil {
			return err
		}
		if _, err := w.Write(m.Bytes()); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteErr writes "ERR <reason>\n" and flushes. reason is err.Error(), so
// callers should pass one of the protocol sentinel errors, whose Error()
// string is already wire-safe.
func WriteErr(w *bufio.Writer, reason error) error {
	if _, err := fmt.Fprintf(w, "ERR %s\n", reason.Error()); err != nil {
		return err
	}
	return w.Flush()
}
