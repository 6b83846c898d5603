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

package record_test

import (
	"testing"

	"github.com/blinklabs-io/gotweet/internal/test"
	"github.com/blinklabs-io/gotweet/layout"
	"github.com/blinklabs-io/gotweet/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareCreate(t *testing.T) {
	req, err := record.PrepareCreate("", "hello")
	require.NoError(t, err)
	assert.Equal(t, record.CreateRequest{Topic: "", Content: "hello"}, req)

	_, err = record.PrepareCreate(test.RepeatString("t", 50), test.RepeatString("c", 280))
	assert.NoError(t, err)
}

func TestPrepareCreateRejectsOversize(t *testing.T) {
	testDefs := []struct {
		topic   string
		content string
		field   string
		length  int
	}{
		{topic: test.RepeatString("t", 51), content: "", field: layout.FieldTopic, length: 51},
		{topic: "", content: test.RepeatString("c", 281), field: layout.FieldContent, length: 281},
		// 26 two-byte characters
		{topic: test.RepeatString("é", 26*2), content: "", field: layout.FieldTopic, length: 52},
	}
	for _, testDef := range testDefs {
		_, err := record.PrepareCreate(testDef.topic, testDef.content)
		var valErr record.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, testDef.field, valErr.Field)
		assert.Equal(t, testDef.length, valErr.Length)
	}
}

func TestPrepareCreateRejectsInvalidUtf8(t *testing.T) {
	testDefs := []struct {
		topic   string
		content string
		field   string
	}{
		{topic: string([]byte{0xff}), field: layout.FieldTopic},
		{topic: "dogs", content: "\xff\xfe", field: layout.FieldContent},
	}
	for _, testDef := range testDefs {
		_, err := record.PrepareCreate(testDef.topic, testDef.content)
		var utf8Err record.InvalidUTF8Error
		require.ErrorAs(t, err, &utf8Err)
		assert.Equal(t, testDef.field, utf8Err.Field)
		assert.Equal(t, testDef.field+" is not valid UTF-8", utf8Err.Error())
	}
}

func TestCreateInstruction(t *testing.T) {
	req := record.CreateRequest{Topic: "dogs", Content: "Bruno is a brave Dog"}
	data := req.InstructionData()
	assert.Equal(t, record.CreateInstructionDiscriminator[:], data[:8])
	assert.Len(t, data, 8+4+4+4+20)

	decoded, err := record.DecodeCreateInstruction(data)
	require.NoError(t, err)
	assert.Equal(t, req, decoded)

	empty := record.CreateRequest{}
	decoded, err = record.DecodeCreateInstruction(empty.InstructionData())
	require.NoError(t, err)
	assert.Equal(t, empty, decoded)
}

func TestDecodeCreateInstructionInvalid(t *testing.T) {
	data := record.CreateRequest{Topic: "dogs", Content: "hello"}.InstructionData()
	wrongDisc := append([]byte{}, data...)
	wrongDisc[0] ^= 0xff
	testDefs := map[string][]byte{
		"short":         data[:4],
		"discriminator": wrongDisc,
		"truncated":     data[:len(data)-1],
		"no content":    data[:16],
		"trailing":      append(append([]byte{}, data...), 0x00),
	}
	for name, input := range testDefs {
		_, err := record.DecodeCreateInstruction(input)
		assert.Error(t, err, name)
	}
}

func TestDecodeCreateInstructionInvalidUtf8(t *testing.T) {
	data := record.CreateRequest{Topic: "dogs", Content: "\xff\xfe"}.InstructionData()
	_, err := record.DecodeCreateInstruction(data)
	var utf8Err record.InvalidUTF8Error
	require.ErrorAs(t, err, &utf8Err)
	assert.Equal(t, layout.FieldContent, utf8Err.Field)
}
