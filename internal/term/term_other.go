// Copyright 2022 The age Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import "os"

var enableVirtualTerminalProcessing = func(out *os.File) error { return nil }
