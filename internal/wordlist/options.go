// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordlist

import "github.com/apex/log"

// DefaultLevel is the zstd level used when none is given. Word lists are
// written rarely and read often, so it favors ratio over speed.
const DefaultLevel = 19

// Option configures a Cache.
type Option interface {
	apply(*Cache)
}

type optionFunc func(*Cache)

func (f optionFunc) apply(c *Cache) {
	f(c)
}

// WithRoot sets the cache root directory. An empty root falls back to
// cacheutil.Dir.
func WithRoot(root string) Option {
	return optionFunc(func(c *Cache) {
		c.root = root
	})
}

// WithEnabled turns the on-disk cache on or off. A disabled cache always
// recomputes and never writes.
func WithEnabled(enabled bool) Option {
	return optionFunc(func(c *Cache) {
		c.enabled = enabled
	})
}

// WithLevel sets the zstd compression level (1..22).
func WithLevel(level int) Option {
	return optionFunc(func(c *Cache) {
		c.codec.level = level
	})
}

// WithLogger sets the logger. The default is the apex/log package logger.
func WithLogger(logger log.Interface) Option {
	return optionFunc(func(c *Cache) {
		c.logger = logger
	})
}
