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

// broker_suite_test.go bootstraps the Ginkgo suite and provides the shared
// helpers used by the end-to-end wire-protocol specs: spinning up a real
// socket.Server on a loopback port, dialing plain net.Conns against it,
// and reading exact-length response fragments.
package broker_test

import (
	"bufio"
	"io"
	"net"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rodakd/tinyq/internal/broker"
	"github.com/rodakd/tinyq/internal/brokerlog"
	"github.com/rodakd/tinyq/internal/registry"
	"github.com/rodakd/tinyq/internal/socket"
)

func TestBrokerWireProtocol(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "tinyq Wire Protocol Suite")
}

// testServer bundles a running broker.Handler and the socket.Server
// fronting it, on an OS-assigned loopback port.
type testServer struct {
	srv   *socket.Server
	state *socket.RunState
	addr  string
}

func startTestServer() *testServer {
	reg := registry.New()
	log := brokerlog.New(io.Discard)
	state := socket.NewRunState()
	handler := broker.NewHandler(reg, log, state)

	srv := socket.New("127.0.0.1:0", nil, handler, state)

	done := make(chan struct{})
	go func() {
		defer GinkgoRecover()
		close(done)
		_ = srv.Listen()
	}()
	<-done

	Eventually(func() net.Addr {
		return srv.BoundAddr()
	}, 2*time.Second, 5*time.Millisecond).ShouldNot(BeNil())

	return &testServer{srv: srv, state: state, addr: srv.BoundAddr().String()}
}

func (t *testServer) stop() {
	_ = t.srv.Stop()
}

func (t *testServer) dial() net.Conn {
	conn, err := net.DialTimeout("tcp", t.addr, 2*time.Second)
	Expect(err).ToNot(HaveOccurred())
	return conn
}

// readExact reads exactly n bytes, failing the running test on short reads.
func readExact(r *bufio.Reader, n int) []byte {
	buf := make([]byte, n)
	_, err := io.ReadFull(r, buf)
	Expect(err).ToNot(HaveOccurred())
	return buf
}

// readLine reads one \n-terminated line including the delimiter.
func readLine(r *bufio.Reader) string {
	line, err := r.ReadString('\n')
	Expect(err).ToNot(HaveOccurred())
	return line
}
