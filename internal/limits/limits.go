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

// Package limits centralizes the numeric bounds the wire protocol and the
// queue registry enforce, so they have one home instead of being repeated
// as magic numbers across the codec and registry packages.
package limits

const (
	// MaxMessageBytes is the largest payload a single ENQUEUE may carry (100 MiB).
	MaxMessageBytes = 100 * 1024 * 1024

	// MaxQueueNameBytes is the longest a queue name token may be.
	MaxQueueNameBytes = 255

	// MaxCommandLineBytes is the longest a command line (excluding the
	// ENQUEUE payload itself) may be before it is rejected outright.
	MaxCommandLineBytes = 1024

	// DefaultPort is the TCP port tinyqd listens on when none is given.
	DefaultPort = 7878
)
