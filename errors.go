// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public memoize API,
// covering coder configuration, cache misses, and backend construction.

package memoize

import (
	"errors"

	"github.com/AndrewDonelson/memoize/internal/coder"
)

// Coder errors
var (
	// ErrInvalidCoder reports a value that satisfies none of the accepted
	// coder shapes. A configuration bug, surfaced at registration time.
	ErrInvalidCoder = coder.ErrInvalidCoder

	// ErrCoderNotFound reports a coder name with no registry entry.
	ErrCoderNotFound = errors.New("memoize: coder not registered")
)

// Data errors
var (
	// ErrMiss reports a cache lookup for an absent key. A first-class
	// outcome, not a failure; distinguishable from any stored value.
	ErrMiss = errors.New("memoize: cache miss")

	ErrEncodeFailed = errors.New("memoize: failed to encode value for storage")
	ErrDecodeFailed = errors.New("memoize: failed to decode stored value")
)

// Backend errors
var (
	// ErrExpireUnsupported reports an expire/TTL passed to a backend with
	// no notion of time-based expiry (the in-memory LRU). Rejected loudly
	// rather than silently dropped so a misconfigured caching site fails
	// its first write instead of serving stale-forever entries.
	ErrExpireUnsupported = errors.New("memoize: backend does not support expiration")

	ErrUnavailable = errors.New("memoize: backend unavailable")
)

// Config errors
var (
	ErrInvalidConfig = errors.New("memoize: invalid configuration")
)
