// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/ezrec/hrm/machine"
	"github.com/ezrec/hrm/queue"
	"github.com/ezrec/hrm/room"
)

func main() {
	var name string
	var list bool
	var interactive bool
	var limit int
	var verbose bool

	flag.StringVar(&name, "r", "mail-room", "Room to run")
	flag.BoolVar(&list, "l", false, "List the built-in rooms")
	flag.BoolVar(&interactive, "i", false, "Read inbox values from stdin instead of the sample data")
	flag.IntVar(&limit, "n", machine.STEP_LIMIT, "Instruction-count ceiling")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if list {
		for _, key := range slices.Sorted(maps.Keys(room.Rooms)) {
			fmt.Println(key)
		}
		return
	}

	rm, ok := room.Rooms[name]
	if !ok {
		log.Fatalf("%v: unknown room", name)
	}

	err := rm.Validate()
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	var in machine.Inbox
	if interactive {
		inter := queue.NewInteractive()
		go feed(inter, os.Stdin)
		in = inter
	}

	out := &queue.Buffer{}
	m := rm.Machine(in, out)
	m.Verbose = verbose
	m.Limit = limit

	halt, err := m.Run()

	for v := range out.All() {
		fmt.Println(v)
	}

	if err != nil {
		log.Fatal(err)
	}

	if verbose {
		log.Printf("%v: %v after %d steps", name, halt, m.Steps)
	}
}

// feed sends whitespace-separated inbox tokens from a reader until EOF,
// then closes the inbox so a blocked machine halts normally.
func feed(in *queue.Interactive, from io.Reader) {
	defer in.Close()

	scan := bufio.NewScanner(from)
	scan.Split(bufio.ScanWords)
	for scan.Scan() {
		word := scan.Text()
		v, err := parse(word)
		if err != nil {
			log.Printf("%v: %v", word, err)
			return
		}
		in.C <- v
	}
}

// parse reads one inbox token: a number, or a single uppercase letter.
func parse(word string) (v machine.Value, err error) {
	if len(word) == 1 && word[0] >= 'A' && word[0] <= 'Z' {
		return machine.NewCharacter(word[0])
	}

	n, err := strconv.Atoi(word)
	if err != nil {
		return
	}

	return machine.NewNumber(n)
}
