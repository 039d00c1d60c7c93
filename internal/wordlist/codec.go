// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordlist

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
)

// codec turns a word set into the on-disk artifact and back: a JSON array of
// strings wrapped in a zstd frame.
type codec struct {
	level int
}

func (c codec) encode(words []string) ([]byte, error) {
	if words == nil {
		words = []string{}
	}
	raw, err := json.Marshal(words)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal words: %w", err)
	}
	return c.compress(raw)
}

func (c codec) decode(data []byte) ([]string, error) {
	raw, err := c.decompress(data)
	if err != nil {
		return nil, err
	}

	var words []string
	if err := json.Unmarshal(raw, &words); err != nil {
		return nil, fmt.Errorf("failed to unmarshal words: %w", err)
	}
	if words == nil {
		return nil, errors.New("cache entry holds no word array")
	}
	return words, nil
}

func (c codec) compress(raw []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(c.level)),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer enc.Close()

	return enc.EncodeAll(raw, make([]byte, 0, len(raw)/4)), nil //nolint:mnd
}

func (c codec) decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress cache entry: %w", err)
	}
	return raw, nil
}
