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

package layout_test

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/blinklabs-io/gotweet/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetFieldOffsets(t *testing.T) {
	testDefs := []struct {
		field         string
		offset        int
		payloadOffset int
	}{
		{field: layout.FieldDiscriminator, offset: 0, payloadOffset: 0},
		{field: layout.FieldAuthor, offset: 8, payloadOffset: 8},
		{field: layout.FieldTimestamp, offset: 40, payloadOffset: 40},
		{field: layout.FieldTopic, offset: 48, payloadOffset: 52},
	}
	for _, testDef := range testDefs {
		offset, err := layout.Tweet.FieldOffset(testDef.field)
		require.NoError(t, err, testDef.field)
		assert.Equal(t, testDef.offset, offset, testDef.field)
		payloadOffset, err := layout.Tweet.PayloadOffset(testDef.field)
		require.NoError(t, err, testDef.field)
		assert.Equal(t, testDef.payloadOffset, payloadOffset, testDef.field)
	}
}

func TestContentHasNoStaticOffset(t *testing.T) {
	_, err := layout.Tweet.FieldOffset(layout.FieldContent)
	var dynErr layout.DynamicOffsetError
	require.ErrorAs(t, err, &dynErr)
	assert.Equal(t, layout.FieldContent, dynErr.Field)
}

func TestUnknownField(t *testing.T) {
	calls := map[string]func() error{
		"FieldOffset": func() error {
			_, err := layout.Tweet.FieldOffset("likes")
			return err
		},
		"FixedWidth": func() error {
			_, _, err := layout.Tweet.FixedWidth("likes")
			return err
		},
		"HasLengthPrefix": func() error {
			_, err := layout.Tweet.HasLengthPrefix("likes")
			return err
		},
		"MaxWidth": func() error {
			_, err := layout.Tweet.MaxWidth("likes")
			return err
		},
	}
	for name, call := range calls {
		var unkErr layout.UnknownFieldError
		err := call()
		require.True(t, errors.As(err, &unkErr), name)
		assert.Equal(t, "likes", unkErr.Field, name)
		assert.Equal(t, "Tweet", unkErr.RecordType, name)
	}
}

func TestFixedWidthAndPrefix(t *testing.T) {
	width, fixed, err := layout.Tweet.FixedWidth(layout.FieldAuthor)
	require.NoError(t, err)
	assert.True(t, fixed)
	assert.Equal(t, 32, width)

	_, fixed, err = layout.Tweet.FixedWidth(layout.FieldTopic)
	require.NoError(t, err)
	assert.False(t, fixed)

	prefixed, err := layout.Tweet.HasLengthPrefix(layout.FieldContent)
	require.NoError(t, err)
	assert.True(t, prefixed)
	prefixed, err = layout.Tweet.HasLengthPrefix(layout.FieldTimestamp)
	require.NoError(t, err)
	assert.False(t, prefixed)

	maxWidth, err := layout.Tweet.MaxWidth(layout.FieldContent)
	require.NoError(t, err)
	assert.Equal(t, 280, maxWidth)
}

func TestSizes(t *testing.T) {
	assert.Equal(t, 56, layout.Tweet.MinSize())
	assert.Equal(t, 8+32+8+4+50+4+280, layout.Tweet.MaxSize())
}

func TestDiscriminator(t *testing.T) {
	hash := sha256.Sum256([]byte("account:Tweet"))
	disc := layout.Tweet.Discriminator()
	assert.Equal(t, hash[:8], disc[:])
	assert.Equal(t, "Tweet", layout.Tweet.RecordType())
}

func TestOffsetsFollowLayoutChanges(t *testing.T) {
	d, err := layout.New(
		"Wide",
		layout.Field{Name: layout.FieldDiscriminator, Width: 8},
		layout.Field{Name: "flags", Width: 2},
		layout.Field{Name: layout.FieldAuthor, Width: 32},
		layout.Field{Name: layout.FieldTopic, Width: 10, LengthPrefixed: true},
	)
	require.NoError(t, err)
	offset, err := d.FieldOffset(layout.FieldAuthor)
	require.NoError(t, err)
	assert.Equal(t, 10, offset)
	payloadOffset, err := d.PayloadOffset(layout.FieldTopic)
	require.NoError(t, err)
	assert.Equal(t, 46, payloadOffset)
}

func TestNewRejectsBadLayouts(t *testing.T) {
	_, err := layout.New("NoDisc", layout.Field{Name: layout.FieldAuthor, Width: 32})
	assert.Error(t, err)
	_, err = layout.New(
		"Dup",
		layout.Field{Name: layout.FieldDiscriminator, Width: 8},
		layout.Field{Name: "a", Width: 1},
		layout.Field{Name: "a", Width: 1},
	)
	assert.Error(t, err)
	_, err = layout.New(
		"Zero",
		layout.Field{Name: layout.FieldDiscriminator, Width: 8},
		layout.Field{Name: "a", Width: 0},
	)
	assert.Error(t, err)
	assert.Panics(t, func() { layout.MustNew("Empty") })
}

func buildRaw(topic, content string) []byte {
	raw := make([]byte, 48)
	raw = binary.LittleEndian.AppendUint32(raw, uint32(len(topic)))
	raw = append(raw, topic...)
	raw = binary.LittleEndian.AppendUint32(raw, uint32(len(content)))
	raw = append(raw, content...)
	return raw
}

func TestLocate(t *testing.T) {
	raw := buildRaw("gm", "hello")
	// Account padding after the last field
	raw = append(raw, make([]byte, 16)...)
	spans, err := layout.Tweet.Locate(raw)
	require.NoError(t, err)
	require.Len(t, spans, 5)
	assert.Equal(t, layout.FieldTopic, spans[3].Field.Name)
	assert.Equal(t, 52, spans[3].Offset)
	assert.Equal(t, 2, spans[3].Length)
	assert.Equal(t, layout.FieldContent, spans[4].Field.Name)
	assert.Equal(t, 58, spans[4].Offset)
	assert.Equal(t, 5, spans[4].Length)
	assert.Equal(t, "hello", string(raw[spans[4].Offset:spans[4].Offset+spans[4].Length]))
}

func TestLocateOutOfBounds(t *testing.T) {
	var oobErr layout.OutOfBoundsError

	_, err := layout.Tweet.Locate(make([]byte, 47))
	require.ErrorAs(t, err, &oobErr)
	assert.Equal(t, layout.FieldTimestamp, oobErr.Field)

	_, err = layout.Tweet.Locate(make([]byte, 48))
	require.ErrorAs(t, err, &oobErr)
	assert.Equal(t, layout.FieldTopic, oobErr.Field)

	raw := make([]byte, 48)
	raw = binary.LittleEndian.AppendUint32(raw, 60)
	raw = append(raw, make([]byte, 10)...)
	_, err = layout.Tweet.Locate(raw)
	require.ErrorAs(t, err, &oobErr)
	assert.Equal(t, layout.FieldTopic, oobErr.Field)
	assert.Equal(t, 60, oobErr.Need)
	assert.Equal(t, 10, oobErr.Have)
}
