// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a small set of helpers on top of the standard
// library errors package, for logging and ignoring errors in value-oriented
// library code where most call sites cannot meaningfully propagate them.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Log takes the given error and logs it if it is non-nil, with the file
// and line of the caller, and returns it unchanged so that call sites can
// both log and propagate in one expression.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return err
}

// Log1 takes the given value and error, logs the error if it is non-nil,
// and returns the value. It is intended for wrapping two-return calls
// where the value is usable regardless.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return v
}

// Ignore1 returns the value, ignoring any error. Use only where the error
// is genuinely impossible or irrelevant.
func Ignore1[T any](v T, _ error) T { return v }

// Must panics if the given error is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns the value and panics if the error is non-nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// callerInfo returns the file:line of the caller two frames up,
// which is the caller of the helper that called this.
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return file + ":" + strconv.Itoa(line)
}
