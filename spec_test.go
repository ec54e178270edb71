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

package cmark

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ravenmark/cmark/internal/normhtml"
	"github.com/ravenmark/cmark/internal/spec"
)

func TestSpec(t *testing.T) {
	examples, err := spec.Load()
	if err != nil {
		t.Fatal(err)
	}
	// The core CommonMark examples are written for soft line breaks and
	// without bare-URL autolinking.
	opts := DefaultOptions()
	opts.HardBreaks = false
	opts.EnableAutolink = false
	for _, test := range examples {
		t.Run(fmt.Sprintf("%s/Example%d", test.Section, test.Example), func(t *testing.T) {
			got, err := Parse([]byte(test.Markdown), opts)
			if err != nil {
				t.Fatal("Parse:", err)
			}
			gotNorm := string(normhtml.NormalizeHTML([]byte(got)))
			want := string(normhtml.NormalizeHTML([]byte(test.HTML)))
			if diff := cmp.Diff(want, gotNorm, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Input:\n%s\nOutput (-want +got):\n%s", test.Markdown, diff)
			}
		})
	}
}

func TestGFMSpec(t *testing.T) {
	examples, err := spec.LoadGFM()
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	for _, test := range examples {
		t.Run(fmt.Sprintf("%s/Example%d", test.Section, test.Example), func(t *testing.T) {
			got, err := Parse([]byte(test.Markdown), opts)
			if err != nil {
				t.Fatal("Parse:", err)
			}
			gotNorm := string(normhtml.NormalizeHTML([]byte(got)))
			want := string(normhtml.NormalizeHTML([]byte(test.HTML)))
			if diff := cmp.Diff(want, gotNorm, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Input:\n%s\nOutput (-want +got):\n%s", test.Markdown, diff)
			}
		})
	}
}
