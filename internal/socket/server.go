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

// Package socket gives the broker's accept loop a concrete, testable
// shape: a listener, a per-connection hook to tune the raw net.Conn
// (TCP_NODELAY and the like), and a HandlerFunc invoked once per accepted
// connection on its own goroutine.
package socket

import (
	"net"
	"sync"
	"sync/atomic"
)

// HandlerFunc is invoked once per accepted connection, on its own
// goroutine. It owns the connection and must close it on every exit path.
type HandlerFunc func(net.Conn)

// UpdateConn is invoked once per accepted connection, before HandlerFunc,
// to apply transport-level tuning such as disabling Nagle's algorithm.
type UpdateConn func(net.Conn)

// Server runs a TCP accept loop and hands each accepted connection to a
// HandlerFunc. The zero value is not usable; use New.
type Server struct {
	addr    string
	update  UpdateConn
	handler HandlerFunc
	state   *RunState

	mu   sync.Mutex
	ln   net.Listener
	gone bool

	openConns atomic.Int64
}

// New returns a Server bound to no listener yet; call Listen to start
// accepting. state is shared with the HandlerFunc's caller (typically the
// connection handler package) so both stop consulting it at the same
// moment.
func New(addr string, update UpdateConn, handler HandlerFunc, state *RunState) *Server {
	return &Server{
		addr:    addr,
		update:  update,
		handler: handler,
		state:   state,
		gone:    true,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// BoundAddr returns the actual address the listener is bound to, useful
// when Addr() names port 0. It is the zero net.Addr value before Listen
// succeeds.
func (s *Server) BoundAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// IsRunning reports whether the shared run state is still set. It is true
// from New until Stop, whether or not Listen is active; see IsGone.
func (s *Server) IsRunning() bool {
	return s.state.Running()
}

// IsGone reports whether the listener has not yet been opened, or has
// been fully closed after a Listen call returned.
func (s *Server) IsGone() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gone
}

// OpenConnections reports the number of currently accepted connections
// whose HandlerFunc has not yet returned.
func (s *Server) OpenConnections() int64 {
	return s.openConns.Load()
}

// Listen opens the listening socket and runs the accept loop until Stop
// is called or the listener fails. It returns nil on a clean shutdown
// triggered by Stop, and the originating error otherwise.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.ln = ln
	s.gone = false
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.gone = true
		s.mu.Unlock()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if !s.state.Running() {
				return nil
			}
			return err
		}

		if s.update != nil {
			s.update(conn)
		}

		s.openConns.Add(1)
		go func(c net.Conn) {
			defer s.openConns.Add(-1)
			s.handler(c)
		}(conn)
	}
}

// Stop clears the shared run state and closes the listener, which
// unblocks Accept in Listen. It does not wait for in-flight connections
// to finish; callers that need that should poll OpenConnections.
func (s *Server) Stop() error {
	s.state.Clear()

	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	if ln == nil {
		return nil
	}
	return ln.Close()
}
