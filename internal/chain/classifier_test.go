package chain_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txproof/txproof-api/internal/chain"
)

var (
	topicUserOperationEvent = common.HexToHash("0x49628fd1471006c1482da88028e9ce4dbb080b815c9b0344d39e5a8e6ec1419f")
	topicExecutionSuccess   = common.HexToHash("0x442e715f626346e8c54381002da614f62bee8d27386535b2521ec8540898556e")
	topicERC20Transfer      = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

	selectorHandleOps       = []byte{0x1f, 0xad, 0x94, 0x8c}
	selectorExecTransaction = []byte{0x6a, 0x76, 0x12, 0x02}
)

func strPtr(s string) *string { return &s }

func logWithTopic(topic common.Hash) chain.Log {
	return chain.Log{
		Address: common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Topics:  []common.Hash{topic},
	}
}

func TestClassify(t *testing.T) {
	entryPoint := "0x5FF137D4b0FDCD49DcA30c7CF57E578a026d2789"

	tests := []struct {
		name           string
		tx             *chain.Transaction
		receipt        *chain.Receipt
		wantType       chain.TransactionType
		wantConfidence chain.Confidence
		wantEvidence   []string
	}{
		{
			name: "user operation via event log",
			tx: &chain.Transaction{
				To:    strPtr("0x2222222222222222222222222222222222222222"),
				Input: []byte{0xde, 0xad, 0xbe, 0xef},
			},
			receipt: &chain.Receipt{
				Logs: []chain.Log{logWithTopic(topicUserOperationEvent)},
			},
			wantType:       chain.TypeUserOperation,
			wantConfidence: chain.ConfidenceHigh,
			wantEvidence:   []string{"log:user_operation_event"},
		},
		{
			name: "user operation via handleOps selector and entry point destination",
			tx: &chain.Transaction{
				To:    strPtr(entryPoint),
				Input: append(append([]byte{}, selectorHandleOps...), 0x00),
			},
			receipt:        &chain.Receipt{},
			wantType:       chain.TypeUserOperation,
			wantConfidence: chain.ConfidenceHeuristic,
			wantEvidence:   []string{"selector:handle_ops", "to:entry_point"},
		},
		{
			name: "entry point destination alone does not match",
			tx: &chain.Transaction{
				To:    strPtr(entryPoint),
				Input: []byte{0xde, 0xad, 0xbe, 0xef},
			},
			receipt:        &chain.Receipt{},
			wantType:       chain.TypeContractCall,
			wantConfidence: chain.ConfidenceHeuristic,
			wantEvidence:   []string{"fallback:contract_call"},
		},
		{
			name: "user operation outranks multisig when both fire",
			tx: &chain.Transaction{
				To:    strPtr("0x2222222222222222222222222222222222222222"),
				Input: append(append([]byte{}, selectorExecTransaction...), 0x00),
			},
			receipt: &chain.Receipt{
				Logs: []chain.Log{
					logWithTopic(topicUserOperationEvent),
					logWithTopic(topicExecutionSuccess),
				},
			},
			wantType:       chain.TypeUserOperation,
			wantConfidence: chain.ConfidenceHigh,
			wantEvidence:   []string{"log:user_operation_event"},
		},
		{
			name: "multisig execution with log and selector",
			tx: &chain.Transaction{
				To:    strPtr("0x3333333333333333333333333333333333333333"),
				Input: append(append([]byte{}, selectorExecTransaction...), 0x00),
			},
			receipt: &chain.Receipt{
				Logs: []chain.Log{logWithTopic(topicExecutionSuccess)},
			},
			wantType:       chain.TypeMultisigExecution,
			wantConfidence: chain.ConfidenceHigh,
			wantEvidence:   []string{"log:execution_success", "selector:exec_transaction"},
		},
		{
			name: "multisig execution via selector only stays heuristic",
			tx: &chain.Transaction{
				To:    strPtr("0x3333333333333333333333333333333333333333"),
				Input: append(append([]byte{}, selectorExecTransaction...), 0x00),
			},
			receipt:        &chain.Receipt{},
			wantType:       chain.TypeMultisigExecution,
			wantConfidence: chain.ConfidenceHeuristic,
			wantEvidence:   []string{"selector:exec_transaction"},
		},
		{
			name: "token transfer via transfer log",
			tx: &chain.Transaction{
				To:    strPtr("0x4444444444444444444444444444444444444444"),
				Input: []byte{0xa9, 0x05, 0x9c, 0xbb},
			},
			receipt: &chain.Receipt{
				Logs: []chain.Log{logWithTopic(topicERC20Transfer)},
			},
			wantType:       chain.TypeTokenTransfer,
			wantConfidence: chain.ConfidenceHigh,
			wantEvidence:   []string{"log:erc20_transfer"},
		},
		{
			name: "contract creation",
			tx: &chain.Transaction{
				To:    nil,
				Input: []byte{0x60, 0x80, 0x60, 0x40},
			},
			receipt:        &chain.Receipt{},
			wantType:       chain.TypeContractCreation,
			wantConfidence: chain.ConfidenceHigh,
			wantEvidence:   []string{"tx:no_destination"},
		},
		{
			name: "dynamic fee native transfer",
			tx: &chain.Transaction{
				To:        strPtr("0x5555555555555555555555555555555555555555"),
				Value:     big.NewInt(1_000_000_000_000_000_000),
				GasFeeCap: big.NewInt(30_000_000_000),
				GasTipCap: big.NewInt(1_000_000_000),
			},
			receipt:        &chain.Receipt{},
			wantType:       chain.TypeNativeTransfer,
			wantConfidence: chain.ConfidenceHigh,
			wantEvidence:   []string{"tx:value_no_calldata"},
		},
		{
			name: "zero value call with data falls back to contract call",
			tx: &chain.Transaction{
				To:    strPtr("0x5555555555555555555555555555555555555555"),
				Value: big.NewInt(0),
				Input: []byte{0x01, 0x02, 0x03, 0x04},
			},
			receipt:        &chain.Receipt{},
			wantType:       chain.TypeContractCall,
			wantConfidence: chain.ConfidenceHeuristic,
			wantEvidence:   []string{"fallback:contract_call"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := chain.Classify(tt.tx, tt.receipt, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantConfidence, got.Confidence)
			assert.Equal(t, tt.wantEvidence, got.Evidence)
		})
	}
}

func TestClassifyNilInput(t *testing.T) {
	_, err := chain.Classify(nil, &chain.Receipt{}, 1)
	assert.ErrorIs(t, err, chain.ErrInvalidInput)

	_, err = chain.Classify(&chain.Transaction{}, nil, 1)
	assert.ErrorIs(t, err, chain.ErrInvalidInput)
}

// Classification is deterministic: repeated runs over the same input yield
// the same type, confidence and evidence order.
func TestClassifyDeterministic(t *testing.T) {
	tx := &chain.Transaction{
		To:    strPtr("0x3333333333333333333333333333333333333333"),
		Input: append(append([]byte{}, selectorExecTransaction...), 0x00),
	}
	receipt := &chain.Receipt{
		Logs: []chain.Log{
			logWithTopic(topicExecutionSuccess),
			logWithTopic(topicERC20Transfer),
		},
	}

	first, err := chain.Classify(tx, receipt, 1)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := chain.Classify(tx, receipt, 1)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestClassifyIncludesEnvelope(t *testing.T) {
	tx := &chain.Transaction{
		To:        strPtr("0x5555555555555555555555555555555555555555"),
		Value:     big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		GasTipCap: big.NewInt(1),
	}
	got, err := chain.Classify(tx, &chain.Receipt{}, 1)
	require.NoError(t, err)
	assert.Equal(t, chain.EnvelopeDynamicFee, got.Envelope)
}
