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

package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/blinklabs-io/gotweet/filter"
	"github.com/blinklabs-io/gotweet/internal/test"
	"github.com/blinklabs-io/gotweet/layout"
	"github.com/blinklabs-io/gotweet/ledger"
	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/blinklabs-io/gotweet/ledger/memory"
	"github.com/blinklabs-io/gotweet/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ledger.RPC = (*memory.Ledger)(nil)

var testBuilder = filter.NewBuilder(layout.Tweet)

func newTestLedger() *memory.Ledger {
	clock := func() time.Time { return time.Unix(1_600_000_000, 0) }
	return memory.New(
		memory.WithProgram(ledger.NewProgram(ledger.WithProgramClock(clock))),
	)
}

func submit(t *testing.T, l *memory.Ledger, signer common.Keypair, topic string, content string) common.PublicKey {
	t.Helper()
	req, err := record.PrepareCreate(topic, content)
	require.NoError(t, err)
	address, err := l.SubmitCreate(context.Background(), req, signer)
	require.NoError(t, err)
	return address
}

func TestCreateAndFetch(t *testing.T) {
	l := newTestLedger()
	signer := test.Keypair(1)
	address := submit(t, l, signer, "dogs", "Bruno is a brave Dog")
	assert.Equal(t, 1, l.Len())

	data, err := l.FetchOne(context.Background(), address)
	require.NoError(t, err)
	rec, err := record.Decode(address, data)
	require.NoError(t, err)
	assert.Equal(t, "dogs", rec.Topic())
	assert.Equal(t, signer.PublicKey(), rec.Author())
	assert.Equal(t, "1600000000", rec.Timestamp())
}

func TestFetchNotFound(t *testing.T) {
	l := newTestLedger()
	_, err := l.FetchOne(context.Background(), test.PublicKey(9))
	var notFound ledger.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, test.PublicKey(9), notFound.Address)
}

func TestListFilters(t *testing.T) {
	l := newTestLedger()
	alice := test.Keypair(1)
	bob := test.Keypair(2)
	first := submit(t, l, alice, "Bruno the brave Dog", "woof")
	second := submit(t, l, bob, "Bruno", "bark")
	third := submit(t, l, alice, "Bru", "meow")

	all, err := l.List(context.Background(), filter.None())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, first, all[0].Address)
	assert.Equal(t, second, all[1].Address)
	assert.Equal(t, third, all[2].Address)

	byAlice, err := testBuilder.ByAuthor(alice.PublicKey())
	require.NoError(t, err)
	accounts, err := l.List(context.Background(), filter.Filters{byAlice})
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, first, accounts[0].Address)
	assert.Equal(t, third, accounts[1].Address)

	byBruno, err := testBuilder.ByTopicPrefix("Bruno")
	require.NoError(t, err)
	accounts, err = l.List(context.Background(), filter.Filters{byBruno})
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	accounts, err = l.List(context.Background(), filter.Filters{byAlice, byBruno})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, first, accounts[0].Address)
}

func TestListReturnsCopies(t *testing.T) {
	l := newTestLedger()
	address := submit(t, l, test.Keypair(1), "", "hello")
	accounts, err := l.List(context.Background(), filter.None())
	require.NoError(t, err)
	accounts[0].Data[0] ^= 0xff
	data, err := l.FetchOne(context.Background(), address)
	require.NoError(t, err)
	_, err = record.Decode(address, data)
	assert.NoError(t, err)
}

func TestSubmitCreateErrors(t *testing.T) {
	l := newTestLedger()
	_, err := l.SubmitCreate(context.Background(), record.CreateRequest{Content: "hi"}, common.Keypair{})
	assert.ErrorIs(t, err, ledger.ErrNoSigner)

	_, err = l.SubmitCreate(
		context.Background(),
		record.CreateRequest{Topic: test.RepeatString("c", 51)},
		test.Keypair(1),
	)
	var progErr ledger.ProgramError
	assert.ErrorAs(t, err, &progErr)
	assert.Equal(t, 0, l.Len())
}

func TestSubmitCreateRejectsInvalidUtf8(t *testing.T) {
	l := newTestLedger()
	signer := test.Keypair(1)
	_, err := l.SubmitCreate(
		context.Background(),
		record.CreateRequest{Topic: "x", Content: "\xff\xfe"},
		signer,
	)
	var progErr ledger.ProgramError
	require.ErrorAs(t, err, &progErr)
	assert.Equal(t, ledger.ErrorCodeInstructionDidNotDeserialize, progErr.Code)
	assert.Equal(t, 0, l.Len())

	_, err = l.SubmitCreate(context.Background(), record.CreateRequest{Topic: "x", Content: "ok"}, signer)
	require.NoError(t, err)
	accounts, err := l.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	_, err = record.Decode(accounts[0].Address, accounts[0].Data)
	assert.NoError(t, err)
}

func TestCanceledContext(t *testing.T) {
	l := newTestLedger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := l.List(ctx, filter.None())
	assert.ErrorIs(t, err, context.Canceled)
	_, err = l.FetchOne(ctx, test.PublicKey(1))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = l.SubmitCreate(ctx, record.CreateRequest{}, test.Keypair(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPutReplaces(t *testing.T) {
	l := memory.New()
	address := test.PublicKey(5)
	l.Put(address, []byte{1})
	l.Put(address, []byte{2})
	assert.Equal(t, 1, l.Len())
	data, err := l.FetchOne(context.Background(), address)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, data)
}

func TestConcurrentAccess(t *testing.T) {
	l := newTestLedger()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			signer := test.Keypair(byte(i + 1))
			_, err := l.SubmitCreate(context.Background(), record.CreateRequest{Content: "hi"}, signer)
			assert.NoError(t, err)
			_, err = l.List(context.Background(), filter.None())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, l.Len())
}
