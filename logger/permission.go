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


package logger

// Permission is consulted by Log() and Logf() before an entry is added. A
// caller that is sometimes not allowed to log, for example because it is
// running in a context where the output would be noise, passes an
// implementation that reports false.
type Permission interface {
	AllowLogging() bool
}

// Allow is the Permission to use when an entry should always be made.
var Allow Permission = always{}

type always struct{}

func (always) AllowLogging() bool {
	return true
}
