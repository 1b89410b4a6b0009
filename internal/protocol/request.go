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

// Package protocol implements the tinyq wire format: a line-oriented
// command header followed, for ENQUEUE, by a length-prefixed binary
// payload. ReadRequest performs framing; WriteOK/WriteErr/WriteList write
// response frames and flush once per frame.
package protocol

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rodakd/tinyq/internal/limits"
)

// Command identifies which operation a Request carries.
type Command int

const (
	CmdEnqueue Command = iota
	CmdDequeue
	CmdList
)

// Request is a single parsed command frame.
type Request struct {
	Cmd     Command
	Name    string
	Payload []byte // set for CmdEnqueue
	Limit   int    // set for CmdList; <= 0 means unlimited
}

// ReadRequest reads and parses exactly one command frame from r, including
// the ENQUEUE payload when present.
//
// A nil Request with a plain io.EOF (or another read error from r) means
// the stream ended or failed before a full command line, or an ENQUEUE's
// length line, was available; the caller should close the connection
// silently. An error for which IsProtocolError reports true means the
// command line parsed far enough to answer with an ERR line and keep the
// connection open. An *ErrPayloadDesync means payload
// bytes were already consumed from the stream when the failure happened;
// the caller must close the connection instead of answering.
func ReadRequest(r *bufio.Reader) (*Request, error) {
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}

	if len(line) > limits.MaxCommandLineBytes {
		return nil, ErrCommandTooLong
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrUnknownCommand
	}

	switch {
	case strings.HasPrefix(fields[0], "ENQUEUE"):
		return readEnqueue(r, fields)
	case strings.HasPrefix(fields[0], "DEQUEUE"):
		return readDequeue(fields)
	case strings.HasPrefix(fields[0], "LIST"):
		return readList(fields)
	default:
		return nil, ErrUnknownCommand
	}
}

// readLine reads one \n-terminated line, stripping a trailing \r\n or \n.
// An error (including io.EOF) from the underlying reader is returned
// as-is; a line present but never terminated before EOF is treated the
// same as an EOF with no data, since no complete command was framed.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

func readEnqueue(r *bufio.Reader, fields []string) (*Request, error) {
	if len(fields) < 2 || len(fields[1]) > limits.MaxQueueNameBytes {
		return nil, ErrMissingName
	}
	name := fields[1]

	lenLine, err := readLine(r)
	if err != nil {
		// No payload byte has been consumed yet; the stream is simply
		// gone, so this is an ordinary transport close, not a desync.
		return nil, err
	}

	n, convErr := strconv.ParseUint(strings.TrimSpace(lenLine), 10, 64)
	if convErr != nil {
		n = 0
	}

	if n == 0 || n > limits.MaxMessageBytes {
		return nil, ErrInvalidLength
	}

	payload := make([]byte, n)
	if _, err = io.ReadFull(r, payload); err != nil {
		return nil, &ErrPayloadDesync{Err: err}
	}

	return &Request{Cmd: CmdEnqueue, Name: name, Payload: payload}, nil
}

func readDequeue(fields []string) (*Request, error) {
	if len(fields) < 2 || len(fields[1]) > limits.MaxQueueNameBytes {
		return nil, ErrMissingName
	}
	return &Request{Cmd: CmdDequeue, Name: fields[1]}, nil
}

func readList(fields []string) (*Request, error) {
	if len(fields) < 2 || len(fields[1]) > limits.MaxQueueNameBytes {
		return nil, ErrMissingName
	}

	limit := 0
	if len(fields) >= 3 {
		if v, err := strconv.Atoi(fields[2]); err == nil {
			limit = v
		}
	}

	return &Request{Cmd: CmdList, Name: fields[1], Limit: limit}, nil
}
