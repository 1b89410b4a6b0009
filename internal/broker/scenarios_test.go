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

package broker_test

import (
	"bufio"
	"fmt"
	"net"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func enqueue(conn net.Conn, r *bufio.Reader, name string, payload []byte) string {
	_, err := fmt.Fprintf(conn, "ENQUEUE %s\n%d\n", name, len(payload))
	Expect(err).ToNot(HaveOccurred())
	_, err = conn.Write(payload)
	Expect(err).ToNot(HaveOccurred())
	return readLine(r)
}

var _ = Describe("tinyq wire protocol", func() {
	var ts *testServer

	BeforeEach(func() {
		ts = startTestServer()
	})

	AfterEach(func() {
		ts.stop()
	})

	It("S1: round trips a payload through ENQUEUE/DEQUEUE", func() {
		conn := ts.dial()
		defer conn.Close()
		r := bufio.NewReader(conn)

		Expect(enqueue(conn, r, "jobs", []byte("hello"))).To(Equal("OK\n"))

		_, err := fmt.Fprint(conn, "DEQUEUE jobs\n")
		Expect(err).ToNot(HaveOccurred())
		Expect(readLine(r)).To(Equal("OK 5\n"))
		Expect(readExact(r, 5)).To(Equal([]byte("hello")))
	})

	It("S2: DEQUEUE on a name never enqueued reports queue empty", func() {
		conn := ts.dial()
		defer conn.Close()
		r := bufio.NewReader(conn)

		fmt.Fprint(conn, "DEQUEUE missing\n")
		Expect(readLine(r)).To(Equal("ERR Queue empty\n"))
	})

	It("S3: LIST returns a non-destructive prefix in FIFO order", func() {
		conn := ts.dial()
		defer conn.Close()
		r := bufio.NewReader(conn)

		Expect(enqueue(conn, r, "q", []byte("A"))).To(Equal("OK\n"))
		Expect(enqueue(conn, r, "q", []byte("B"))).To(Equal("OK\n"))
		Expect(enqueue(conn, r, "q", []byte("C"))).To(Equal("OK\n"))

		fmt.Fprint(conn, "LIST q 2\n")
		Expect(readLine(r)).To(Equal("OK 2\n"))
		Expect(readLine(r)).To(Equal("1\n"))
		Expect(readExact(r, 1)).To(Equal([]byte("A")))
		Expect(readLine(r)).To(Equal("1\n"))
		Expect(readExact(r, 1)).To(Equal([]byte("B")))

		fmt.Fprint(conn, "DEQUEUE q\n")
		Expect(readLine(r)).To(Equal("OK 1\n"))
		Expect(readExact(r, 1)).To(Equal([]byte("A")))
	})

	It("S4: binary payloads, including NUL and 0xFF, survive intact", func() {
		conn := ts.dial()
		defer conn.Close()
		r := bufio.NewReader(conn)

		payload := []byte{0x00, 0xff, 'Z'}
		Expect(enqueue(conn, r, "b", payload)).To(Equal("OK\n"))

		fmt.Fprint(conn, "DEQUEUE b\n")
		Expect(readLine(r)).To(Equal("OK 3\n"))
		Expect(readExact(r, 3)).To(Equal(payload))
	})

	It("S5: an oversize length is rejected without consuming a payload, and the connection stays usable", func() {
		conn := ts.dial()
		defer conn.Close()
		r := bufio.NewReader(conn)

		fmt.Fprint(conn, "ENQUEUE big\n104857601\n")
		Expect(readLine(r)).To(Equal("ERR Invalid message length\n"))

		fmt.Fprint(conn, "LIST big\n")
		Expect(readLine(r)).To(Equal("OK 0\n"))
	})

	It("S6: an unknown command reports an error and keeps the connection open", func() {
		conn := ts.dial()
		defer conn.Close()
		r := bufio.NewReader(conn)

		fmt.Fprint(conn, "NUKE q\n")
		Expect(readLine(r)).To(Equal("ERR Unknown command\n"))

		fmt.Fprint(conn, "LIST q\n")
		Expect(readLine(r)).To(Equal("OK 0\n"))
	})

	It("S7: two concurrent producers and one consumer preserve per-producer order and full coverage", func() {
		const perProducer = 1000

		var wg sync.WaitGroup
		wg.Add(2)

		produce := func(tag byte) {
			defer wg.Done()
			defer GinkgoRecover()

			conn := ts.dial()
			defer conn.Close()
			r := bufio.NewReader(conn)

			for i := 0; i < perProducer; i++ {
				payload := []byte{tag, byte(i), byte(i >> 8), byte(i >> 16)}
				Expect(enqueue(conn, r, "c", payload)).To(Equal("OK\n"))
			}
		}

		go produce('X')
		go produce('Y')
		wg.Wait()

		conn := ts.dial()
		defer conn.Close()
		r := bufio.NewReader(conn)

		seenX, seenY := -1, -1
		countX, countY := 0, 0

		for i := 0; i < perProducer*2; i++ {
			fmt.Fprint(conn, "DEQUEUE c\n")
			status := readLine(r)
			Expect(status).To(HavePrefix("OK "))

			var n int
			fmt.Sscanf(status, "OK %d\n", &n)
			body := readExact(r, n)

			seq := int(body[1]) | int(body[2])<<8 | int(body[3])<<16
			switch body[0] {
			case 'X':
				Expect(seq).To(BeNumerically(">", seenX))
				seenX = seq
				countX++
			case 'Y':
				Expect(seq).To(BeNumerically(">", seenY))
				seenY = seq
				countY++
			}
		}

		Expect(countX).To(Equal(perProducer))
		Expect(countY).To(Equal(perProducer))
	})

	It("lazily creates queues only on ENQUEUE, never on DEQUEUE or LIST", func() {
		conn := ts.dial()
		defer conn.Close()
		r := bufio.NewReader(conn)

		fmt.Fprint(conn, "LIST ghost\n")
		Expect(readLine(r)).To(Equal("OK 0\n"))

		fmt.Fprint(conn, "DEQUEUE ghost\n")
		Expect(readLine(r)).To(Equal("ERR Queue empty\n"))

		fmt.Fprint(conn, "LIST ghost\n")
		Expect(readLine(r)).To(Equal("OK 0\n"))
	})

	It("keeps operations on separate queues isolated", func() {
		conn := ts.dial()
		defer conn.Close()
		r := bufio.NewReader(conn)

		Expect(enqueue(conn, r, "alpha", []byte("only-alpha"))).To(Equal("OK\n"))

		fmt.Fprint(conn, "LIST beta\n")
		Expect(readLine(r)).To(Equal("OK 0\n"))

		fmt.Fprint(conn, "DEQUEUE alpha\n")
		Expect(readLine(r)).To(Equal("OK 10\n"))
		Expect(readExact(r, 10)).To(Equal([]byte("only-alpha")))
	})
})
