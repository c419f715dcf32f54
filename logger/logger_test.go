// This file is part of A8Carts.
//
// A8Carts is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// A8Carts is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with A8Carts.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/jetsetilly/a8carts/logger"
	"github.com/jetsetilly/a8carts/test"
)

// test logger and the use of the Tail() function
func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatsAndLimit(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "cartridgetype", "%d cartridge types", 76)
	log.Logf(logger.Allow, "cartridgetype", "%d cartridge types", 76)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cartridgetype: 76 cartridge types (repeat x2)\n")

	log.Log(logger.Allow, "a", errors.New("error detail"))
	log.Log(logger.Allow, "b", 10)
	w.Reset()
	log.Write(w)
	test.ExpectEquality(t, w.String(), "a: error detail\nb: 10\n")

	log.Clear()
	w.Reset()
	test.ExpectFailure(t, log.Write(w))
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	tw := &test.Writer{}

	log.SetEcho(tw)
	log.Log(logger.Allow, "echo", "multi\nline")
	test.ExpectSuccess(t, tw.Compare("echo: multiline\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "silent")
	test.ExpectSuccess(t, tw.Compare("echo: multiline\n"))
}

// test permissions by randomising whether logging is allowed or not. there's no
// need to do the randomisation but it's as good a demonstration as anything
// else I can think of
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for i := 0; i < 100; i++ {
		p.allow = rand.Intn(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

func TestCentral(t *testing.T) {
	w := &strings.Builder{}
	logger.SetEcho(w)
	defer logger.SetEcho(nil)

	logger.Log(logger.Allow, "central", "entry")
	logger.Logf(logger.Allow, "central", "%d entries", 2)
	test.ExpectEquality(t, w.String(), "central: entry\ncentral: 2 entries\n")
}
