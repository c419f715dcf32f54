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

// Package prefs handles preference overrides given on the command line.
//
// A preferences string is a list of key/value pairs separated by semicolons.
// Key and value are separated by a double colon:
//
//	"export.format::yaml; list.flash::true"
//
// Strings are pushed onto a stack with PushCommandLineStack(). Values are
// consumed with GetCommandLinePref() and friends, which delete the entry
// once it has been read. PopCommandLineStack() returns whatever was not
// consumed, which is useful for warning about unrecognised preferences.
package prefs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value is the type used for preference values.
type Value any

var commandLineStack []map[string]Value

func init() {
	commandLineStack = make([]map[string]Value, 0)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the "unused" preferences of the stack entry.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	// rebuild the prefs string from the remaining entries
	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s::%v; ", key, popped[key]))
	}

	return strings.TrimSuffix(s.String(), "; ")
}

// PushCommandLineStack parses a preferences string and adds it as a new group.
// Malformed key/value pairs are ignored.
func PushCommandLineStack(prefs string) {
	commandLineStack = append(commandLineStack, make(map[string]Value))
	cl := commandLineStack[len(commandLineStack)-1]

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			cl[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
}

// GetCommandLinePref value from current group. The value is deleted when it is
// returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	cl := commandLineStack[len(commandLineStack)-1]

	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, nil
}

// GetCommandLineString is a convenience wrapper for GetCommandLinePref().
func GetCommandLineString(key string) (bool, string) {
	ok, v := GetCommandLinePref(key)
	if !ok {
		return false, ""
	}
	return true, fmt.Sprintf("%v", v)
}

// GetCommandLineBool is a convenience wrapper for GetCommandLinePref(). A
// value that cannot be interpreted as a boolean is treated as missing and is
// put back onto the stack so that it is reported as unused.
func GetCommandLineBool(key string) (bool, bool) {
	ok, v := GetCommandLinePref(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(fmt.Sprintf("%v", v))
	if err != nil {
		commandLineStack[len(commandLineStack)-1][key] = v
		return false, false
	}
	return true, b
}
