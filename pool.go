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

import "sync"

// bufPool recycles small byte-slice scratch buffers through getBuf and
// putBuf. Nothing in the package calls them at present: the parser
// accumulates leaf content in each Block's own buf, and the renderer
// uses renderBufPool below.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

// getBuf returns a zero-length scratch buffer from the pool.
func getBuf() []byte {
	p := bufPool.Get().(*[]byte)
	return (*p)[:0]
}

// putBuf returns b to the pool for reuse. Callers must not use b after
// calling putBuf.
func putBuf(b []byte) {
	if cap(b) == 0 {
		return
	}
	bufPool.Put(&b)
}

// renderBufPool recycles the renderer's output accumulator separately
// from leaf-content scratch buffers, since rendered documents tend to be
// substantially larger than any single block's raw content.
var renderBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 4096)
		return &b
	},
}

func getRenderBuf() []byte {
	p := renderBufPool.Get().(*[]byte)
	return (*p)[:0]
}

func putRenderBuf(b []byte) {
	if cap(b) == 0 {
		return
	}
	renderBufPool.Put(&b)
}
