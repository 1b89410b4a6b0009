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

// Command tinyqd is the TCP front end for the in-memory, multi-queue
// message broker. It accepts an optional positional port argument,
// defaulting to limits.DefaultPort, and serves the wire protocol
// implemented in internal/protocol until interrupted.
package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rodakd/tinyq/internal/broker"
	"github.com/rodakd/tinyq/internal/brokerlog"
	"github.com/rodakd/tinyq/internal/limits"
	"github.com/rodakd/tinyq/internal/registry"
	"github.com/rodakd/tinyq/internal/socket"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "tinyqd [port]",
		Short:         "tinyqd is an in-memory, multi-queue TCP message broker",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	port := limits.DefaultPort

	if len(args) == 1 {
		p, err := strconv.Atoi(args[0])
		if err != nil || p < 1 || p > 65535 {
			return fmt.Errorf("invalid port: %s", args[0])
		}
		port = p
	}

	log := brokerlog.New(os.Stdout)
	reg := registry.New()
	state := socket.NewRunState()
	handler := broker.NewHandler(reg, log, state)

	srv := socket.New(fmt.Sprintf(":%d", port), setNoDelay, handler, state)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		log.Shutdown()
		_ = srv.Stop()
	}()

	log.Listening(srv.Addr())

	return srv.Listen()
}

// setNoDelay disables Nagle-style coalescing on every accepted
// connection, the same way the C original calls
// setsockopt(..., TCP_NODELAY, ...) right after accept().
func setNoDelay(c net.Conn) {
	if tc, ok := c.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}
}
