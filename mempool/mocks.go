package mempool

import (
	"context"

	"github.com/cryptonote-go/txpool/chainhash"
	"github.com/stretchr/testify/mock"
)

// MockValidator is a testify mock implementation of Validator.
type MockValidator struct {
	mock.Mock
}

var _ Validator = (*MockValidator)(nil)

// CheckTransactionInputs implements Validator.
func (m *MockValidator) CheckTransactionInputs(ctx context.Context, tx Tx, tip BlockInfo) (bool, BlockInfo, BlockInfo) {
	args := m.Called(ctx, tx, tip)
	return args.Bool(0), args.Get(1).(BlockInfo), args.Get(2).(BlockInfo)
}

// MockChain is a testify mock implementation of Chain.
type MockChain struct {
	mock.Mock
}

var _ Chain = (*MockChain)(nil)

// Tip implements Chain.
func (m *MockChain) Tip() BlockInfo {
	args := m.Called()
	return args.Get(0).(BlockInfo)
}

// HashAtHeight implements Chain.
func (m *MockChain) HashAtHeight(height uint64) (chainhash.Hash, bool) {
	args := m.Called(height)
	return args.Get(0).(chainhash.Hash), args.Bool(1)
}

// MockClock is a testify mock implementation of Clock.
type MockClock struct {
	mock.Mock
}

var _ Clock = (*MockClock)(nil)

// Now implements Clock.
func (m *MockClock) Now() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

// MockRewardPolicy is a testify mock implementation of RewardPolicy.
type MockRewardPolicy struct {
	mock.Mock
}

var _ RewardPolicy = (*MockRewardPolicy)(nil)

// Fits implements RewardPolicy.
func (m *MockRewardPolicy) Fits(medianSize, alreadyGeneratedCoins, cumulativeSize, cumulativeFee uint64) bool {
	args := m.Called(medianSize, alreadyGeneratedCoins, cumulativeSize, cumulativeFee)
	return args.Bool(0)
}

// fakeTx is a minimal, hand-rolled Tx implementation used across the test
// suite; it is not a mock.Mock because tests construct many of these by
// value and a plain struct keeps that terse.
type fakeTx struct {
	blobSize  int
	fee       uint64
	inputs    []TxInput
	paymentID chainhash.Hash
	havePID   bool
	blob      []byte
}

var _ Tx = (*fakeTx)(nil)

func (t *fakeTx) Inputs() []TxInput { return t.inputs }
func (t *fakeTx) BlobSize() int     { return t.blobSize }
func (t *fakeTx) Fee() uint64       { return t.fee }

func (t *fakeTx) PaymentID() (chainhash.Hash, bool) {
	return t.paymentID, t.havePID
}

func (t *fakeTx) Marshal() ([]byte, error) {
	return t.blob, nil
}

// fakeDecoder maps a persisted blob back to the fakeTx registered for it in
// byBlob, or to a new fakeTx carrying only that blob if none is registered;
// good enough for persistence round-trip tests.
type fakeDecoder struct {
	byBlob map[string]*fakeTx
}

var _ TxDecoder = (*fakeDecoder)(nil)

func (d *fakeDecoder) DecodeTx(blob []byte) (Tx, error) {
	if tx, ok := d.byBlob[string(blob)]; ok {
		return tx, nil
	}
	return &fakeTx{blob: blob}, nil
}
