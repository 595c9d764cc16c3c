// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrCorruptRecord  = errors.New("stored record does not match expected layout")
	ErrAccountExists  = errors.New("account already exists")
	ErrInvalidAddress = errors.New("invalid account address")
)
