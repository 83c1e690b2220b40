package chain

import "github.com/ethereum/go-ethereum/common"

// Event signature topics and call-data selectors the classifier matches on.
// Topics are keccak256 of the canonical event signature; selectors are the
// first four bytes of the keccak256 of the method signature.
var (
	// UserOperationEvent(bytes32,address,address,uint256,bool,uint256,uint256)
	topicUserOperationEvent = common.HexToHash("0x49628fd1471006c1482da88028e9ce4dbb080b815c9b0344d39e5a8e6ec1419f")

	// ExecutionSuccess(bytes32,uint256)
	topicExecutionSuccess = common.HexToHash("0x442e715f626346e8c54381002da614f62bee8d27386535b2521ec8540898556e")

	// ExecutionFailure(bytes32,uint256)
	topicExecutionFailure = common.HexToHash("0x23428b18acfb3ea64b08dc0c1d296ea9c09702c09083ca5272e64d115b687d23")

	// Transfer(address,address,uint256)
	topicERC20Transfer = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
)

var (
	// handleOps((address,uint256,bytes,bytes,uint256,uint256,uint256,uint256,uint256,bytes,bytes)[],address)
	selectorHandleOps = [4]byte{0x1f, 0xad, 0x94, 0x8c}

	// execTransaction(address,uint256,bytes,uint8,uint256,uint256,uint256,address,address,bytes)
	selectorExecTransaction = [4]byte{0x6a, 0x76, 0x12, 0x02}
)

// Canonical ERC-4337 entry-point deployments. Address-based detection backs
// up the log/selector checks for bundlers that call the entry point directly.
var entryPointAddresses = map[common.Address]struct{}{
	common.HexToAddress("0x5FF137D4b0FDCD49DcA30c7CF57E578a026d2789"): {}, // v0.6
	common.HexToAddress("0x0000000071727De22E5E9d8BAf0edAc6f37da032"): {}, // v0.7
}

func isEntryPoint(addr string) bool {
	_, ok := entryPointAddresses[common.HexToAddress(addr)]
	return ok
}
