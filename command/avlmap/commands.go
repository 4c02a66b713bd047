// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/ordmap"
)

// the operations the command processor needs from a map
type store interface {
	Insert(key string, value string)
	Erase(key string)
	Find(key string) (string, bool)
	Len() int
	Height() int
	Check() error
	IsMyTreeBalanced() bool
	Print(w io.Writer, printData bool) int
	Statistics() ordmap.Statistics
}

type command struct {
	name      string
	arguments []string
	help      string
}

// keep in display order
var commands = []command{
	{"insert", []string{"KEY", "VALUE"}, "add KEY or overwrite its value"},
	{"erase", []string{"KEY"}, "remove KEY, ignored if absent"},
	{"find", []string{"KEY"}, "show the value of KEY"},
	{"count", nil, "number of keys"},
	{"height", nil, "height of the tree"},
	{"check", nil, "validate ordering and balance"},
	{"print", nil, "display the tree"},
	{"stats", nil, "operation statistics"},
	{"help", nil, "this message"},
	{"quit", nil, "stop processing commands"},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

type processor struct {
	log   *logger.L
	store store
	out   io.Writer
	check bool // validate after each change
}

func newProcessor(log *logger.L, s store, out io.Writer, check bool) *processor {
	return &processor{
		log:   log,
		store: s,
		out:   out,
		check: check,
	}
}

// run - process a list of words that may hold several commands
// returns true if a quit command was seen
func (p *processor) run(words []string) (bool, error) {
	for len(words) > 0 {
		name := strings.ToLower(words[0])
		c, ok := lookupCommand(name)
		if !ok {
			p.log.Warnf("unknown command: %q", words[0])
			return false, fault.ErrUnknownCommand
		}
		n := 1 + len(c.arguments)
		if len(words) < n {
			p.log.Warnf("command: %s  has: %d of %d parameters", name, len(words)-1, len(c.arguments))
			return false, fault.ErrMissingParameters
		}
		quit, err := p.execute(name, words[1:n])
		if nil != err || quit {
			return quit, err
		}
		words = words[n:]
	}
	return false, nil
}

// runStream - one or more commands per line, blank lines and lines
// starting with '#' are ignored
func (p *processor) runStream(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		quit, err := p.run(strings.Fields(line))
		if nil != err {
			return fmt.Errorf("line: %d  error: %w", lineNumber, err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

func (p *processor) execute(name string, arguments []string) (bool, error) {
	switch name {
	case "insert":
		key, value := arguments[0], arguments[1]
		p.log.Debugf("insert: %q → %q", key, value)
		p.store.Insert(key, value)
		return false, p.validate()

	case "erase":
		key := arguments[0]
		p.log.Debugf("erase: %q", key)
		p.store.Erase(key)
		return false, p.validate()

	case "find":
		key := arguments[0]
		value, ok := p.store.Find(key)
		if !ok {
			fmt.Fprintf(p.out, "%s: %s\n", key, fault.ErrKeyNotFound)
		} else {
			fmt.Fprintf(p.out, "%s → %s\n", key, value)
		}

	case "count":
		fmt.Fprintf(p.out, "%d\n", p.store.Len())

	case "height":
		fmt.Fprintf(p.out, "%d\n", p.store.Height())

	case "check":
		if err := p.store.Check(); nil != err {
			p.log.Criticalf("check failed: %s", err)
			return false, err
		}
		if !p.store.IsMyTreeBalanced() {
			p.log.Critical("balance check failed")
			return false, fault.ErrTreeUnbalanced
		}
		fmt.Fprintf(p.out, "ok\n")

	case "print":
		depth := p.store.Print(p.out, true)
		p.log.Debugf("printed depth: %d", depth)

	case "stats":
		return false, printJson(p.out, "statistics", p.store.Statistics())

	case "help":
		p.help()

	case "quit":
		p.log.Info("quit")
		return true, nil

	default:
		return false, fault.ErrUnknownCommand
	}
	return false, nil
}

// after a change the tree must still be valid
func (p *processor) validate() error {
	if !p.check {
		return nil
	}
	if err := p.store.Check(); nil != err {
		p.log.Criticalf("validation failed: %s", err)
		return err
	}
	return nil
}

func (p *processor) help() {
	for _, c := range commands {
		usage := strings.TrimSpace(c.name + " " + strings.Join(c.arguments, " "))
		fmt.Fprintf(p.out, "  %-20s  %s\n", usage, c.help)
	}
}
