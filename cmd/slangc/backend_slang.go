// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build cgo && slang

package main

import _ "github.com/gogpu/slang/native/cslang"
