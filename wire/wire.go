// Copyright 2023 Sneller Labs
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package wire implements a snapshot/serialization format for
// chunklist.List: its logical content, not its chunk layout. It lives
// outside the core container and consumes it purely through New,
// Append and ForEach.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"runtime"

	"github.com/dchest/siphash"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/sneller-labs/chunklist"
)

// magic identifies the frame format; version allows the layout to
// change without silently misparsing an older frame.
const (
	magic   = uint32(0x434c4b31) // "CLK1"
	version = uint16(1)
)

// checksum keys, fixed the same way splitter.go fixes its siphash keys
// for worker-assignment hashing: a stable, arbitrary pair, not a
// secret (this is a corruption check, not an authentication tag).
const (
	checksumKey0 = uint64(0x5ca1ab1e5ca1ab1e)
	checksumKey1 = uint64(0xfebed702febed702)
)

// Frame is a decoded snapshot header plus its element count, returned
// alongside the reconstructed list by Decode.
type Frame struct {
	SnapshotID uuid.UUID
	Count      int
}

// Encode serializes every element of l, in index order, into a
// framed, zstd-compressed, siphash-checksummed byte stream. marshal
// converts a single element to its wire bytes.
func Encode[T any](l *chunklist.List[T], marshal func(T) ([]byte, error)) ([]byte, error) {
	var payload bytes.Buffer
	count := 0
	var marshalErr error
	l.ForEach(func(v T) {
		if marshalErr != nil {
			return
		}
		b, err := marshal(v)
		if err != nil {
			marshalErr = err
			return
		}
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(b)))
		payload.Write(lenBuf[:])
		payload.Write(b)
		count++
	})
	if marshalErr != nil {
		return nil, fmt.Errorf("wire: encode: %w", marshalErr)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(runtime.GOMAXPROCS(0)))
	if err != nil {
		return nil, fmt.Errorf("wire: encode: %w", err)
	}
	defer enc.Close()
	compressed := enc.EncodeAll(payload.Bytes(), nil)

	checksum := siphash.Hash(checksumKey0, checksumKey1, compressed)

	id := uuid.New()
	var out bytes.Buffer
	var hdr [4 + 2 + 16 + 8 + 8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], magic)
	binary.LittleEndian.PutUint16(hdr[4:6], version)
	copy(hdr[6:22], id[:])
	binary.LittleEndian.PutUint64(hdr[22:30], uint64(count))
	binary.LittleEndian.PutUint64(hdr[30:38], checksum)
	out.Write(hdr[:])
	out.Write(compressed)
	return out.Bytes(), nil
}

// Decode parses a stream produced by Encode back into a fresh List,
// appending elements in their original order. unmarshal converts a
// single element's wire bytes back to T.
func Decode[T any](data []byte, unmarshal func([]byte) (T, error)) (*chunklist.List[T], Frame, error) {
	var f Frame
	const hdrLen = 4 + 2 + 16 + 8 + 8
	if len(data) < hdrLen {
		return nil, f, fmt.Errorf("wire: decode: frame too short")
	}
	if got := binary.LittleEndian.Uint32(data[0:4]); got != magic {
		return nil, f, fmt.Errorf("wire: decode: bad magic %#x", got)
	}
	if got := binary.LittleEndian.Uint16(data[4:6]); got != version {
		return nil, f, fmt.Errorf("wire: decode: unsupported version %d", got)
	}
	copy(f.SnapshotID[:], data[6:22])
	count := int(binary.LittleEndian.Uint64(data[22:30]))
	wantChecksum := binary.LittleEndian.Uint64(data[30:38])
	compressed := data[hdrLen:]

	if got := siphash.Hash(checksumKey0, checksumKey1, compressed); got != wantChecksum {
		return nil, f, fmt.Errorf("wire: decode: checksum mismatch (corrupt frame)")
	}

	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
	if err != nil {
		return nil, f, fmt.Errorf("wire: decode: %w", err)
	}
	defer dec.Close()
	payload, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, f, fmt.Errorf("wire: decode: %w", err)
	}

	l := chunklist.New[T]()
	off := 0
	for i := 0; i < count; i++ {
		if off+4 > len(payload) {
			return nil, f, fmt.Errorf("wire: decode: truncated element length")
		}
		n := int(binary.LittleEndian.Uint32(payload[off : off+4]))
		off += 4
		if off+n > len(payload) {
			return nil, f, fmt.Errorf("wire: decode: truncated element body")
		}
		v, err := unmarshal(payload[off : off+n])
		if err != nil {
			return nil, f, fmt.Errorf("wire: decode: element %d: %w", i, err)
		}
		off += n
		l.Append(v)
	}
	f.Count = count
	return l, f, nil
}
