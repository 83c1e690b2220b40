package chain_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/txproof/txproof-api/internal/chain"
)

func TestDecodeEnvelope(t *testing.T) {
	tests := []struct {
		name string
		tx   *chain.Transaction
		want chain.Envelope
	}{
		{
			name: "legacy transaction with only gas price",
			tx: &chain.Transaction{
				GasPrice: big.NewInt(20_000_000_000),
			},
			want: chain.EnvelopeLegacy,
		},
		{
			name: "bare transaction defaults to legacy",
			tx:   &chain.Transaction{},
			want: chain.EnvelopeLegacy,
		},
		{
			name: "access list transaction",
			tx: &chain.Transaction{
				GasPrice:      big.NewInt(20_000_000_000),
				HasAccessList: true,
			},
			want: chain.EnvelopeAccessList,
		},
		{
			name: "dynamic fee transaction",
			tx: &chain.Transaction{
				GasFeeCap: big.NewInt(30_000_000_000),
				GasTipCap: big.NewInt(1_000_000_000),
			},
			want: chain.EnvelopeDynamicFee,
		},
		{
			name: "dynamic fee with only fee cap set",
			tx: &chain.Transaction{
				GasFeeCap: big.NewInt(30_000_000_000),
			},
			want: chain.EnvelopeDynamicFee,
		},
		{
			name: "blob transaction",
			tx: &chain.Transaction{
				GasFeeCap:  big.NewInt(30_000_000_000),
				GasTipCap:  big.NewInt(1_000_000_000),
				BlobFeeCap: big.NewInt(1),
				BlobHashes: []common.Hash{common.HexToHash("0x01")},
			},
			want: chain.EnvelopeBlob,
		},
		{
			name: "blob markers outrank dynamic fee markers",
			tx: &chain.Transaction{
				GasFeeCap:     big.NewInt(30_000_000_000),
				GasTipCap:     big.NewInt(1_000_000_000),
				BlobFeeCap:    big.NewInt(1),
				HasAccessList: true,
			},
			want: chain.EnvelopeBlob,
		},
		{
			name: "dynamic fee markers outrank access list markers",
			tx: &chain.Transaction{
				GasFeeCap:     big.NewInt(30_000_000_000),
				HasAccessList: true,
			},
			want: chain.EnvelopeDynamicFee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chain.DecodeEnvelope(tt.tx))
		})
	}
}

// Every transaction decodes to exactly one of the four envelope kinds,
// whatever combination of optional fields it carries.
func TestDecodeEnvelopeTotality(t *testing.T) {
	known := map[chain.Envelope]bool{
		chain.EnvelopeLegacy:     true,
		chain.EnvelopeAccessList: true,
		chain.EnvelopeDynamicFee: true,
		chain.EnvelopeBlob:       true,
	}

	feeCaps := []*big.Int{nil, big.NewInt(1)}
	for _, gasFeeCap := range feeCaps {
		for _, gasTipCap := range feeCaps {
			for _, blobFeeCap := range feeCaps {
				for _, hasAccessList := range []bool{false, true} {
					tx := &chain.Transaction{
						GasFeeCap:     gasFeeCap,
						GasTipCap:     gasTipCap,
						BlobFeeCap:    blobFeeCap,
						HasAccessList: hasAccessList,
					}
					got := chain.DecodeEnvelope(tx)
					assert.True(t, known[got], "unknown envelope %q", got)
				}
			}
		}
	}
}
