// Copyright 2024 The cmark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command cmarkfmt reads Markdown from stdin (or a file argument) and
// writes it back out, either as reformatted Markdown or rendered HTML.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ravenmark/cmark"
	"github.com/ravenmark/cmark/format"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cmarkfmt: ")

	html := flag.Bool("html", false, "render HTML instead of reformatting Markdown")
	hardBreaks := flag.Bool("hard-breaks", false, "treat soft line breaks as hard breaks")
	noTables := flag.Bool("no-tables", false, "disable GFM pipe tables")
	noTaskLists := flag.Bool("no-task-lists", false, "disable GFM task list checkboxes")
	noAutolink := flag.Bool("no-autolink", false, "disable bare URL and email autolinking")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: cmarkfmt [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	in := os.Stdin
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	source, err := io.ReadAll(in)
	if err != nil {
		log.Fatal(err)
	}

	opts := cmark.DefaultOptions()
	opts.HardBreaks = *hardBreaks
	opts.EnableTables = !*noTables
	opts.EnableTaskLists = !*noTaskLists
	opts.EnableAutolink = !*noAutolink

	root, err := cmark.ParseToAST(source, opts)
	if err != nil {
		log.Fatal(err)
	}

	if *html {
		os.Stdout.WriteString(cmark.Render(&root.Block, opts))
		return
	}
	if err := format.Format(os.Stdout, root); err != nil {
		log.Fatal(err)
	}
}
