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

// Package brokerlog is a thin, scoped-down structured-logging wrapper
// around logrus: the broker only ever needs a handful of fields (addr,
// queue, remote, error), so it gets a handful of named helpers instead of
// a general-purpose field builder.
package brokerlog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps a *logrus.Logger with the field names the broker uses.
type Logger struct {
	l *logrus.Logger
}

// New returns a Logger writing JSON-free, text-formatted lines to out. A
// nil out defaults to os.Stdout.
func New(out io.Writer) *Logger {
	if out == nil {
		out = os.Stdout
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)

	return &Logger{l: l}
}

// Listening logs the single informational startup line, naming the
// address the server is configured to listen on.
func (g *Logger) Listening(addr string) {
	g.l.WithField("addr", addr).Info("tinyqd listening")
}

// ConnOpened logs a new accepted connection.
func (g *Logger) ConnOpened(remote string) {
	g.l.WithField("remote", remote).Debug("connection opened")
}

// ConnClosed logs a connection tearing down.
func (g *Logger) ConnClosed(remote string, err error) {
	e := g.l.WithField("remote", remote)
	if err != nil {
		e.WithField("error", err).Debug("connection closed")
		return
	}
	e.Debug("connection closed")
}

// ProtocolError logs a recoverable protocol error answered with ERR on
// the wire; the connection stays open.
func (g *Logger) ProtocolError(remote, queueName string, err error) {
	g.l.WithFields(logrus.Fields{"remote": remote, "queue": queueName}).WithError(err).Warn("protocol error")
}

// Shutdown logs the graceful-shutdown line.
func (g *Logger) Shutdown() {
	g.l.Info("shutting down")
}

// Fatalf logs at fatal level and exits the process, matching logrus's own
// Fatalf contract.
func (g *Logger) Fatalf(format string, args ...interface{}) {
	g.l.Fatalf(format, args...)
}
