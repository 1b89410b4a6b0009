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

// Package broker implements the per-connection state machine: read a
// command, dispatch it against the queue registry, write a response,
// repeat. It is the socket.HandlerFunc registered with the socket.Server.
package broker

import (
	"bufio"
	"net"

	"github.com/rodakd/tinyq/internal/brokerlog"
	"github.com/rodakd/tinyq/internal/protocol"
	"github.com/rodakd/tinyq/internal/queue"
	"github.com/rodakd/tinyq/internal/registry"
	"github.com/rodakd/tinyq/internal/socket"
)

// Handler dispatches parsed requests against a queue registry.
type Handler struct {
	reg   *registry.Registry
	log   *brokerlog.Logger
	state *socket.RunState
}

// NewHandler returns a socket.HandlerFunc bound to reg. state must be the
// same RunState the owning socket.Server consults, so both see a cleared
// flag; a live connection observes it before reading its next command.
func NewHandler(reg *registry.Registry, log *brokerlog.Logger, state *socket.RunState) socket.HandlerFunc {
	h := &Handler{reg: reg, log: log, state: state}
	return h.Serve
}

// Serve runs the READ_COMMAND -> DISPATCH -> RESPOND loop for one
// connection until EOF, a transport error, an unrecoverable payload
// desync, or the shared run state is cleared.
func (h *Handler) Serve(conn net.Conn) {
	remote := conn.RemoteAddr().String()
	h.log.ConnOpened(remote)
	defer conn.Close()

	r := bufio.NewReader(conn)
	w := bufio.NewWriter(conn)

	for h.state.Running() {
		req, err := protocol.ReadRequest(r)
		if err != nil {
			if _, desync := err.(*protocol.ErrPayloadDesync); desync {
				h.log.ConnClosed(remote, err)
				return
			}
			if !protocol.IsProtocolError(err) {
				// EOF or another transport-level failure: the peer is
				// gone, close silently.
				h.log.ConnClosed(remote, nil)
				return
			}

			h.log.ProtocolError(remote, "", err)
			if werr := protocol.WriteErr(w, err); werr != nil {
				h.log.ConnClosed(remote, werr)
				return
			}
			continue
		}

		if werr := h.dispatch(w, req); werr != nil {
			h.log.ConnClosed(remote, werr)
			return
		}
	}

	h.log.ConnClosed(remote, nil)
}

// dispatch executes one parsed request against the registry and writes
// its response frame. A non-nil return is always a transport (write)
// failure; logical outcomes like "queue empty" are written as ERR frames
// and reported as a nil error, since the connection stays open for them.
func (h *Handler) dispatch(w *bufio.Writer, req *protocol.Request) error {
	switch req.Cmd {
	case protocol.CmdEnqueue:
		body, _ := h.reg.Locate(req.Name, true)
		body.Append(queue.NewMessage(req.Payload))
		return protocol.WriteOK(w)

	case protocol.CmdDequeue:
		body, ok := h.reg.Locate(req.Name, false)
		if !ok {
			return protocol.WriteErr(w, protocol.ErrQueueEmpty)
		}
		msg := body.Pop()
		if msg == nil {
			return protocol.WriteErr(w, protocol.ErrQueueEmpty)
		}
		return protocol.WriteMessage(w, msg)

	case protocol.CmdList:
		body, ok := h.reg.Locate(req.Name, false)
		if !ok {
			return protocol.WriteList(w, nil)
		}
		return protocol.WriteList(w, body.Snapshot(req.Limit))

	default:
		return protocol.WriteErr(w, protocol.ErrUnknownCommand)
	}
}
