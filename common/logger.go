// Copyright © 2021 Io FinNet Group, Inc.
// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"github.com/ipfs/go-log"
)

// Logger is the process-wide structured logger for this module. Every
// package logs through it rather than rolling its own.
var Logger = log.Logger("primpoly")
