// Copyright 2025 The Fixpp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command fixdump parses a single FIX frame from stdin (or -in) and
// prints its header and body fields, one tag per line. It exists to
// exercise the public fixpp API end to end; it is not part of the codec
// itself (spec §1 "no CLI" describes the library, not this harness).
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/abc-arbitrage/fixpp"
	"github.com/abc-arbitrage/fixpp/dictionary"
)

func main() {
	var (
		inPath  = flag.String("in", "", "path to a file containing one FIX frame (default: stdin)")
		delim   = flag.String("delim", "\x01", "field delimiter; pass | for SOH-free test fixtures")
		strict  = flag.Bool("strict", false, "reject unknown tags instead of capturing them")
		checks  = flag.Bool("validate", true, "validate checksum and body length")
	)
	flag.Parse()

	if len(*delim) != 1 {
		log.Fatalf("fixdump: -delim must be exactly one byte, got %q", *delim)
	}

	data, err := readInput(*inPath)
	if err != nil {
		log.Fatalf("fixdump: %v", err)
	}

	dispatcher := dictionary.NewDefaultDispatcher()
	opts := []fixpp.ParseOption{
		fixpp.WithDispatcher(dispatcher),
		fixpp.WithDelimiter((*delim)[0]),
		fixpp.WithStrictMode(*strict),
		fixpp.WithValidateChecksum(*checks),
		fixpp.WithValidateLength(*checks),
	}

	err = fixpp.Visit(data, dump, opts...)
	if err != nil {
		if perr, ok := err.(*fixpp.ParseError); ok {
			log.Fatalf("fixdump: parse failed at offset %d: %v", perr.Offset(), perr)
		}
		log.Fatalf("fixdump: %v", err)
	}
}

func dump(header, body *fixpp.Message) error {
	fmt.Println("# header")
	dumpMessage(header)
	fmt.Println("# body")
	dumpMessage(body)
	return nil
}

func dumpMessage(m *fixpp.Message) {
	for _, e := range m.Shape.Entries {
		if !m.Present(e.Tag) {
			continue
		}
		if e.Kind == fixpp.EntryGroup {
			recs, _ := fixpp.Group(m, e.Tag)
			fmt.Printf("%d=<group of %d>\n", e.Tag, len(recs))
			for i, rec := range recs {
				fmt.Printf("  record[%d]:\n", i)
				dumpIndented(rec)
			}
			continue
		}
		v, err := m.GetValue(e.Tag)
		if err != nil {
			continue
		}
		fmt.Printf("%d=%s\n", e.Tag, v.AsString())
	}
	dumpUnparsed(m)
}

func dumpIndented(m *fixpp.Message) {
	for _, e := range m.Shape.Entries {
		if !m.Present(e.Tag) {
			continue
		}
		v, err := m.GetValue(e.Tag)
		if err != nil {
			continue
		}
		fmt.Printf("    %d=%s\n", e.Tag, v.AsString())
	}
}

func dumpUnparsed(m *fixpp.Message) {
	m.Unparsed().Range(func(tag int, val []byte) {
		fmt.Printf("%d=%s (unparsed)\n", tag, val)
	})
}

func readInput(path string) ([]byte, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, bufio.NewReader(r)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
