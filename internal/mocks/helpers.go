package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockTxFetcherForTest creates a new mock TxFetcher for testing
func NewMockTxFetcherForTest(t *testing.T) *MockTxFetcher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTxFetcher(ctrl)
}

// NewMockPriceGetterForTest creates a new mock PriceGetter for testing
func NewMockPriceGetterForTest(t *testing.T) *MockPriceGetter {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPriceGetter(ctrl)
}
