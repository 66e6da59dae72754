// Copyright © 2021 Io FinNet Group, Inc.
// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
)

// TrueRandomUint32 draws one uint32 of entropy from the OS CSPRNG via
// crypto/rand.Reader. Used only to reseed the JKISS generator in
// package factor, never on the hot path of a primality test.
func TrueRandomUint32() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, errors.Wrap(err, "TrueRandomUint32: failed to read entropy")
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}
