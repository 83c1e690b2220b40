package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/txproof/txproof-api/internal/logger"
)

// Client fetches and normalizes transaction data from configured chains.
type Client struct {
	clients map[int64]*ethclient.Client
	log     *zap.Logger
}

// NewClient dials every configured RPC endpoint. Endpoints that fail to dial
// are skipped with a warning; at least one connection must succeed.
func NewClient(endpoints map[int64]string) (*Client, error) {
	c := &Client{
		clients: make(map[int64]*ethclient.Client),
		log:     logger.Log,
	}

	for chainID, url := range endpoints {
		client, err := ethclient.Dial(url)
		if err != nil {
			c.log.Warn("Failed to connect to chain RPC",
				zap.Int64("chain_id", chainID),
				zap.Error(err),
			)
			continue
		}
		c.clients[chainID] = client
		c.log.Info("Connected to chain RPC", zap.Int64("chain_id", chainID))
	}

	if len(c.clients) == 0 {
		return nil, fmt.Errorf("no RPC connections established")
	}
	return c, nil
}

// SupportsChain reports whether a chain id has a live RPC connection.
func (c *Client) SupportsChain(chainID int64) bool {
	_, ok := c.clients[chainID]
	return ok
}

// FetchTransaction retrieves a confirmed transaction and its receipt and
// normalizes both. An unknown chain or a transaction the chain has never
// seen is an ErrInvalidInput condition; a still-pending transaction is a
// plain error the caller may retry.
func (c *Client) FetchTransaction(ctx context.Context, chainID int64, txHash string) (*Transaction, *Receipt, error) {
	client, ok := c.clients[chainID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: no RPC client for chain %d", ErrInvalidInput, chainID)
	}

	hash := common.HexToHash(txHash)

	tx, isPending, err := client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, nil, fmt.Errorf("%w: transaction %s not found on chain %d", ErrInvalidInput, txHash, chainID)
		}
		return nil, nil, errors.Wrap(err, "failed to get transaction")
	}
	if isPending {
		return nil, nil, fmt.Errorf("transaction %s is still pending", txHash)
	}

	receipt, err := client.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get transaction receipt")
	}

	header, err := client.HeaderByNumber(ctx, receipt.BlockNumber)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get block header")
	}

	signer := types.LatestSignerForChainID(tx.ChainId())
	from, err := types.Sender(signer, tx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to recover sender")
	}

	return normalizeTransaction(tx, from), normalizeReceipt(receipt, header.Time), nil
}

// Close closes all RPC connections.
func (c *Client) Close() {
	for chainID, client := range c.clients {
		client.Close()
		c.log.Info("Closed RPC connection", zap.Int64("chain_id", chainID))
	}
}

// normalizeTransaction maps a go-ethereum transaction onto the decoder's
// field-presence model: fee fields a given envelope generation does not
// carry stay nil.
func normalizeTransaction(tx *types.Transaction, from common.Address) *Transaction {
	out := &Transaction{
		Hash:     tx.Hash().Hex(),
		From:     from.Hex(),
		Value:    tx.Value(),
		Input:    tx.Data(),
		Nonce:    tx.Nonce(),
		GasLimit: tx.Gas(),
	}

	if to := tx.To(); to != nil {
		hex := to.Hex()
		out.To = &hex
	}

	switch tx.Type() {
	case types.BlobTxType:
		out.GasFeeCap = tx.GasFeeCap()
		out.GasTipCap = tx.GasTipCap()
		out.BlobFeeCap = tx.BlobGasFeeCap()
		out.BlobHashes = tx.BlobHashes()
		out.HasAccessList = len(tx.AccessList()) > 0
	case types.DynamicFeeTxType:
		out.GasFeeCap = tx.GasFeeCap()
		out.GasTipCap = tx.GasTipCap()
		out.HasAccessList = len(tx.AccessList()) > 0
	case types.AccessListTxType:
		out.GasPrice = tx.GasPrice()
		out.HasAccessList = true
	default:
		out.GasPrice = tx.GasPrice()
	}

	return out
}

func normalizeReceipt(receipt *types.Receipt, blockTime uint64) *Receipt {
	out := &Receipt{
		Status:            receipt.Status,
		GasUsed:           receipt.GasUsed,
		EffectiveGasPrice: receipt.EffectiveGasPrice,
		BlockNumber:       receipt.BlockNumber.Uint64(),
		BlockTimestamp:    blockTime,
	}
	for _, l := range receipt.Logs {
		out.Logs = append(out.Logs, Log{
			Address: l.Address,
			Topics:  l.Topics,
			Data:    l.Data,
		})
	}
	return out
}
