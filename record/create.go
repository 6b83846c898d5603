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
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/blinklabs-io/gotweet/layout"
)

const CreateInstructionName = "send_tweet"

// CreateInstructionDiscriminator prefixes the instruction data of a create request
var CreateInstructionDiscriminator = instructionDiscriminator(CreateInstructionName)

func instructionDiscriminator(name string) [8]byte {
	var ret [8]byte
	hash := sha256.Sum256([]byte("global:" + name))
	copy(ret[:], hash[:8])
	return ret
}

// CreateRequest holds the arguments of a create call that passed local
// length checks. The ledger re-validates them
type CreateRequest struct {
	Topic   string
	Content string
}

// PrepareCreate checks topic and content against the default layout
func PrepareCreate(topic string, content string) (CreateRequest, error) {
	return defaultCodec.PrepareCreate(topic, content)
}

// PrepareCreate checks topic and content against the layout's field widths
// before anything is sent to the ledger
func (c *Codec) PrepareCreate(topic string, content string) (CreateRequest, error) {
	for _, check := range []struct {
		field string
		value string
	}{
		{layout.FieldTopic, topic},
		{layout.FieldContent, content},
	} {
		maxWidth, err := c.layout.MaxWidth(check.field)
		if err != nil {
			return CreateRequest{}, err
		}
		if len(check.value) > maxWidth {
			return CreateRequest{}, ValidationError{
				Field:  check.field,
				Length: len(check.value),
				Max:    maxWidth,
			}
		}
		if !utf8.ValidString(check.value) {
			return CreateRequest{}, InvalidUTF8Error{Field: check.field}
		}
	}
	return CreateRequest{Topic: topic, Content: content}, nil
}

// InstructionData returns the serialized create instruction: an 8-byte
// instruction discriminator followed by the length-prefixed topic and content
func (r CreateRequest) InstructionData() []byte {
	buf := make([]byte, 0, 8+2*layout.LengthPrefixWidth+len(r.Topic)+len(r.Content))
	buf = append(buf, CreateInstructionDiscriminator[:]...)
	for _, s := range []string{r.Topic, r.Content} {
		// #nosec G115 -- strings are bounded by PrepareCreate
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
		buf = append(buf, s...)
	}
	return buf
}

// DecodeCreateInstruction parses data produced by CreateRequest.InstructionData.
// Both strings must be valid UTF-8. It does not apply length limits
func DecodeCreateInstruction(data []byte) (CreateRequest, error) {
	if len(data) < len(CreateInstructionDiscriminator) {
		return CreateRequest{}, errors.New("instruction data too short")
	}
	if !bytes.Equal(data[:8], CreateInstructionDiscriminator[:]) {
		return CreateRequest{}, fmt.Errorf("unknown instruction discriminator %x", data[:8])
	}
	pos := 8
	fields := [2]string{layout.FieldTopic, layout.FieldContent}
	var values [2]string
	for i := range values {
		if len(data)-pos < layout.LengthPrefixWidth {
			return CreateRequest{}, errors.New("instruction data truncated")
		}
		length := binary.LittleEndian.Uint32(data[pos:])
		pos += layout.LengthPrefixWidth
		if uint64(length) > uint64(len(data)-pos) {
			return CreateRequest{}, errors.New("instruction data truncated")
		}
		value := data[pos : pos+int(length)]
		if !utf8.Valid(value) {
			return CreateRequest{}, InvalidUTF8Error{Field: fields[i]}
		}
		values[i] = string(value)
		pos += int(length)
	}
	if pos != len(data) {
		return CreateRequest{}, fmt.Errorf("%d trailing bytes in instruction data", len(data)-pos)
	}
	return CreateRequest{Topic: values[0], Content: values[1]}, nil
}
