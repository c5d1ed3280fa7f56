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

// Package fixpp is a statically-typed, schema-driven codec for FIX
// protocol frames (FIX.4.2, FIX.4.3, FIX.4.4, and FIXT.1.1).
//
// A Dispatcher resolves a frame's BeginString/MsgType pair to a compiled
// Shape; Visit parses a frame against a Dispatcher and hands the caller
// view storage bound to the input buffer; Write walks a populated message
// and emits wire bytes with BodyLength and CheckSum computed, not
// supplied. The package deliberately has no opinion on network I/O,
// session sequencing, or persistence -- see dictionary for a
// representative message set and internal/schema for building your own.
package fixpp
