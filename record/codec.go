// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/blinklabs-io/gotweet/layout"
	"github.com/blinklabs-io/gotweet/ledger/common"
)

var defaultCodec = NewCodec()

// Codec converts between raw account bytes and Records using a layout
type Codec struct {
	layout             *layout.Descriptor
	checkDiscriminator bool
}

// CodecOptionFunc is a type that represents functions that modify the Codec config
type CodecOptionFunc func(*Codec)

// WithLayout specifies the record layout. The default is layout.Tweet
func WithLayout(d *layout.Descriptor) CodecOptionFunc {
	return func(c *Codec) {
		c.layout = d
	}
}

// WithDiscriminatorCheck specifies whether Decode rejects records whose
// discriminator does not match the layout. This is enabled by default
func WithDiscriminatorCheck(check bool) CodecOptionFunc {
	return func(c *Codec) {
		c.checkDiscriminator = check
	}
}

// NewCodec returns a Codec with the specified options
func NewCodec(opts ...CodecOptionFunc) *Codec {
	c := &Codec{
		layout:             layout.Tweet,
		checkDiscriminator: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Codec) Layout() *layout.Descriptor {
	return c.layout
}

// Decode decodes raw account bytes with the default codec
func Decode(address common.PublicKey, data []byte) (Record, error) {
	return defaultCodec.Decode(address, data)
}

// Encode encodes a record with the default codec
func Encode(r Record) ([]byte, error) {
	return defaultCodec.Encode(r)
}

// Decode decodes the raw bytes of the account at address
func (c *Codec) Decode(address common.PublicKey, data []byte) (Record, error) {
	spans, err := c.layout.Locate(data)
	if err != nil {
		var oobErr layout.OutOfBoundsError
		if errors.As(err, &oobErr) {
			return Record{}, MalformedRecordError{Address: address, Err: err}
		}
		return Record{}, err
	}
	payloads := make(map[string][]byte, len(spans))
	for _, span := range spans {
		payloads[span.Field.Name] = data[span.Offset : span.Offset+span.Length]
	}
	if c.checkDiscriminator {
		expected := c.layout.Discriminator()
		if disc := payloads[layout.FieldDiscriminator]; !bytes.Equal(disc, expected[:]) {
			return Record{}, WrongRecordTypeError{
				Address:  address,
				Expected: expected[:],
				Actual:   bytes.Clone(disc),
			}
		}
	}
	ret := Record{address: address}
	for _, name := range []string{layout.FieldAuthor, layout.FieldTimestamp, layout.FieldTopic, layout.FieldContent} {
		payload, ok := payloads[name]
		if !ok {
			return Record{}, layout.UnknownFieldError{
				RecordType: c.layout.RecordType(),
				Field:      name,
			}
		}
		switch name {
		case layout.FieldAuthor:
			author, err := common.NewPublicKey(payload)
			if err != nil {
				return Record{}, MalformedRecordError{Address: address, Err: err}
			}
			ret.author = author
		case layout.FieldTimestamp:
			if len(payload) != layout.TimestampSize {
				return Record{}, MalformedRecordError{
					Address: address,
					Err:     fmt.Errorf("timestamp is %d bytes", len(payload)),
				}
			}
			// #nosec G115 -- two's complement reinterpretation is intended
			ts := int64(binary.LittleEndian.Uint64(payload))
			ret.timestamp = strconv.FormatInt(ts, 10)
		case layout.FieldTopic, layout.FieldContent:
			if !utf8.Valid(payload) {
				return Record{}, MalformedRecordError{
					Address: address,
					Err:     InvalidUTF8Error{Field: name},
				}
			}
			if name == layout.FieldTopic {
				ret.topic = string(payload)
			} else {
				ret.content = string(payload)
			}
		}
	}
	return ret, nil
}

// Encode returns the account bytes for a record. The result is not padded to
// the layout's MaxSize
func (c *Codec) Encode(r Record) ([]byte, error) {
	ts, err := strconv.ParseInt(r.timestamp, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid record timestamp %q: %w", r.timestamp, err)
	}
	buf := bytes.NewBuffer(make([]byte, 0, c.layout.MinSize()+len(r.topic)+len(r.content)))
	for _, f := range c.layout.Fields() {
		var value []byte
		switch f.Name {
		case layout.FieldDiscriminator:
			disc := c.layout.Discriminator()
			value = disc[:]
		case layout.FieldAuthor:
			value = r.author[:]
		case layout.FieldTimestamp:
			// #nosec G115 -- two's complement reinterpretation is intended
			value = binary.LittleEndian.AppendUint64(nil, uint64(ts))
		case layout.FieldTopic:
			value = []byte(r.topic)
		case layout.FieldContent:
			value = []byte(r.content)
		default:
			return nil, layout.UnknownFieldError{
				RecordType: c.layout.RecordType(),
				Field:      f.Name,
			}
		}
		if f.LengthPrefixed {
			if len(value) > f.Width {
				return nil, ValidationError{Field: f.Name, Length: len(value), Max: f.Width}
			}
			// #nosec G115 -- length is bounded by the field width
			_, _ = buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(value))))
		} else if len(value) != f.Width {
			return nil, fmt.Errorf("field %s is %d bytes, layout expects %d", f.Name, len(value), f.Width)
		}
		_, _ = buf.Write(value)
	}
	return buf.Bytes(), nil
}

// Remaining returns how many more bytes a variable-length field can hold after
// text. The result is negative when text is already too long
func (c *Codec) Remaining(field string, text string) (int, error) {
	maxWidth, err := c.layout.MaxWidth(field)
	if err != nil {
		return 0, err
	}
	return maxWidth - len(text), nil
}
