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

package layout

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	DiscriminatorSize = 8
	PublicKeySize     = 32
	TimestampSize     = 8

	// LengthPrefixWidth is the size of the little-endian u32 that precedes
	// every variable-length field
	LengthPrefixWidth = 4

	MaxTopicSize   = 50
	MaxContentSize = 280
)

const (
	FieldDiscriminator = "discriminator"
	FieldAuthor        = "author"
	FieldTimestamp     = "timestamp"
	FieldTopic         = "topic"
	FieldContent       = "content"
)

// Tweet is the layout of a tweet account
var Tweet = MustNew(
	"Tweet",
	Field{Name: FieldDiscriminator, Width: DiscriminatorSize},
	Field{Name: FieldAuthor, Width: PublicKeySize},
	Field{Name: FieldTimestamp, Width: TimestampSize},
	Field{Name: FieldTopic, Width: MaxTopicSize, LengthPrefixed: true},
	Field{Name: FieldContent, Width: MaxContentSize, LengthPrefixed: true},
)

// Field describes a single field of a record layout. For length-prefixed
// fields, Width is the maximum payload size, not counting the prefix
type Field struct {
	Name           string
	Width          int
	LengthPrefixed bool
}

// Descriptor is an ordered, immutable record layout
type Descriptor struct {
	recordType    string
	discriminator [DiscriminatorSize]byte
	fields        []Field
	index         map[string]int
	// offsets holds the static offset of each field, or -1 when a
	// preceding field is variable-length
	offsets []int
}

// Span locates the payload of a field within a specific record's bytes
type Span struct {
	Field  Field
	Offset int
	Length int
}

// New builds a Descriptor. The first field must be the discriminator
func New(recordType string, fields ...Field) (*Descriptor, error) {
	if len(fields) == 0 || fields[0].Name != FieldDiscriminator ||
		fields[0].Width != DiscriminatorSize || fields[0].LengthPrefixed {
		return nil, fmt.Errorf(
			"layout %q must start with a %d-byte %s field",
			recordType,
			DiscriminatorSize,
			FieldDiscriminator,
		)
	}
	d := &Descriptor{
		recordType: recordType,
		fields:     make([]Field, len(fields)),
		index:      make(map[string]int, len(fields)),
		offsets:    make([]int, len(fields)),
	}
	copy(d.fields, fields)
	offset := 0
	for i, f := range d.fields {
		if f.Name == "" {
			return nil, errors.New("layout field name must not be empty")
		}
		if f.Width <= 0 {
			return nil, fmt.Errorf("layout field %q has invalid width %d", f.Name, f.Width)
		}
		if _, ok := d.index[f.Name]; ok {
			return nil, fmt.Errorf("duplicate layout field %q", f.Name)
		}
		d.index[f.Name] = i
		d.offsets[i] = offset
		if offset < 0 {
			continue
		}
		if f.LengthPrefixed {
			offset = -1
		} else {
			offset += f.Width
		}
	}
	hash := sha256.Sum256([]byte("account:" + recordType))
	copy(d.discriminator[:], hash[:DiscriminatorSize])
	return d, nil
}

// MustNew is like New but panics on an invalid layout
func MustNew(recordType string, fields ...Field) *Descriptor {
	d, err := New(recordType, fields...)
	if err != nil {
		panic(fmt.Sprintf("invalid layout: %s", err))
	}
	return d
}

func (d *Descriptor) RecordType() string {
	return d.recordType
}

// Discriminator returns the tag stored in the first bytes of every record of
// this type
func (d *Descriptor) Discriminator() [DiscriminatorSize]byte {
	return d.discriminator
}

// Fields returns a copy of the field list in layout order
func (d *Descriptor) Fields() []Field {
	ret := make([]Field, len(d.fields))
	copy(ret, d.fields)
	return ret
}

func (d *Descriptor) field(name string) (int, Field, error) {
	idx, ok := d.index[name]
	if !ok {
		return 0, Field{}, UnknownFieldError{RecordType: d.recordType, Field: name}
	}
	return idx, d.fields[idx], nil
}

// FieldOffset returns the offset of the start of a field, including any length prefix
func (d *Descriptor) FieldOffset(name string) (int, error) {
	idx, _, err := d.field(name)
	if err != nil {
		return 0, err
	}
	if d.offsets[idx] < 0 {
		return 0, DynamicOffsetError{RecordType: d.recordType, Field: name}
	}
	return d.offsets[idx], nil
}

// PayloadOffset returns the offset of the first payload byte of a field, which
// skips the length prefix of variable-length fields
func (d *Descriptor) PayloadOffset(name string) (int, error) {
	offset, err := d.FieldOffset(name)
	if err != nil {
		return 0, err
	}
	// FieldOffset already validated the name
	_, f, _ := d.field(name)
	if f.LengthPrefixed {
		offset += LengthPrefixWidth
	}
	return offset, nil
}

// FixedWidth returns the width of a fixed-size field. The second return value
// is false for variable-length fields
func (d *Descriptor) FixedWidth(name string) (int, bool, error) {
	_, f, err := d.field(name)
	if err != nil {
		return 0, false, err
	}
	if f.LengthPrefixed {
		return 0, false, nil
	}
	return f.Width, true, nil
}

func (d *Descriptor) HasLengthPrefix(name string) (bool, error) {
	_, f, err := d.field(name)
	if err != nil {
		return false, err
	}
	return f.LengthPrefixed, nil
}

// MaxWidth returns the largest payload a field may hold
func (d *Descriptor) MaxWidth(name string) (int, error) {
	_, f, err := d.field(name)
	if err != nil {
		return 0, err
	}
	return f.Width, nil
}

// MinSize returns the size of a record whose variable-length fields are all empty
func (d *Descriptor) MinSize() int {
	ret := 0
	for _, f := range d.fields {
		if f.LengthPrefixed {
			ret += LengthPrefixWidth
		} else {
			ret += f.Width
		}
	}
	return ret
}

// MaxSize returns the account space needed to hold any valid record
func (d *Descriptor) MaxSize() int {
	ret := 0
	for _, f := range d.fields {
		ret += f.Width
		if f.LengthPrefixed {
			ret += LengthPrefixWidth
		}
	}
	return ret
}

// Locate walks the layout over data and returns the payload span of every
// field. Bytes after the last field are ignored
func (d *Descriptor) Locate(data []byte) ([]Span, error) {
	ret := make([]Span, 0, len(d.fields))
	pos := 0
	for _, f := range d.fields {
		length := f.Width
		if f.LengthPrefixed {
			if len(data)-pos < LengthPrefixWidth {
				return nil, OutOfBoundsError{
					Field:  f.Name,
					Offset: pos,
					Need:   LengthPrefixWidth,
					Have:   len(data) - pos,
				}
			}
			declared := binary.LittleEndian.Uint32(data[pos : pos+LengthPrefixWidth])
			pos += LengthPrefixWidth
			if uint64(declared) > uint64(len(data)-pos) {
				return nil, OutOfBoundsError{
					Field:  f.Name,
					Offset: pos,
					Need:   int(declared),
					Have:   len(data) - pos,
				}
			}
			length = int(declared)
		} else if len(data)-pos < length {
			return nil, OutOfBoundsError{
				Field:  f.Name,
				Offset: pos,
				Need:   length,
				Have:   len(data) - pos,
			}
		}
		ret = append(ret, Span{Field: f, Offset: pos, Length: length})
		pos += length
	}
	return ret, nil
}
