package chain

// TransactionType is the semantic category assigned to a transaction.
type TransactionType string

const (
	TypeUserOperation     TransactionType = "account_abstraction"
	TypeMultisigExecution TransactionType = "multisig_execution"
	TypeTokenTransfer     TransactionType = "token_transfer"
	TypeContractCreation  TransactionType = "contract_creation"
	TypeNativeTransfer    TransactionType = "native_transfer"
	TypeContractCall      TransactionType = "contract_call"
)

// Confidence grades the evidence behind a classification. Log topics are
// immutable receipt facts and grade high; a call-data pattern alone cannot
// prove the call executed as implied and grades heuristic.
type Confidence string

const (
	ConfidenceHigh      Confidence = "high"
	ConfidenceHeuristic Confidence = "heuristic"
)

// Classification is the full classifier output. Evidence records which
// checks fired, in detector order, so a result can be audited without
// re-running detection.
type Classification struct {
	Envelope   Envelope        `json:"envelope"`
	Type       TransactionType `json:"type"`
	Confidence Confidence      `json:"confidence"`
	Evidence   []string        `json:"evidence"`
}

// detector is a single predicate in the classification chain. It reports
// whether it matches and, when it does, the confidence grade and the
// evidence identifiers that fired.
type detector struct {
	txType TransactionType
	detect func(tx *Transaction, receipt *Receipt) (bool, Confidence, []string)
}

// detectors run in priority order and are exclusive: the first match wins.
// Account abstraction outranks multisig because a user operation can itself
// trigger a multisig execution log, and the outer intent should prevail.
var detectors = []detector{
	{TypeUserOperation, detectUserOperation},
	{TypeMultisigExecution, detectMultisigExecution},
	{TypeTokenTransfer, detectTokenTransfer},
	{TypeContractCreation, detectContractCreation},
	{TypeNativeTransfer, detectNativeTransfer},
}

// Classify assigns a semantic type to a confirmed transaction. It is
// deterministic: identical (tx, receipt, chainID) input always yields an
// identical result, evidence included. Malformed input is a caller contract
// violation, reported as ErrInvalidInput rather than a classification.
func Classify(tx *Transaction, receipt *Receipt, chainID int64) (Classification, error) {
	if tx == nil || receipt == nil {
		return Classification{}, ErrInvalidInput
	}

	result := Classification{
		Envelope: DecodeEnvelope(tx),
	}

	for _, d := range detectors {
		matched, confidence, evidence := d.detect(tx, receipt)
		if !matched {
			continue
		}
		result.Type = d.txType
		result.Confidence = confidence
		result.Evidence = evidence
		return result, nil
	}

	// Generic contract call fallback. Nothing proves the caller's intent, so
	// the grade stays heuristic.
	result.Type = TypeContractCall
	result.Confidence = ConfidenceHeuristic
	result.Evidence = []string{"fallback:contract_call"}
	return result, nil
}

// detectUserOperation matches ERC-4337 user operations. Log-based and
// call-data-based evidence are each sufficient on their own: some relayers
// batch calls without the sender invoking the entry point directly.
func detectUserOperation(tx *Transaction, receipt *Receipt) (bool, Confidence, []string) {
	var evidence []string

	hasEvent := receipt.hasTopic(topicUserOperationEvent)
	if hasEvent {
		evidence = append(evidence, "log:user_operation_event")
	}
	sel, ok := tx.selector()
	hasSelector := ok && sel == selectorHandleOps
	if hasSelector {
		evidence = append(evidence, "selector:handle_ops")
	}
	if tx.To != nil && isEntryPoint(*tx.To) {
		// Corroborating only: the destination alone proves nothing about
		// what the call did.
		evidence = append(evidence, "to:entry_point")
	}

	if !hasEvent && !hasSelector {
		return false, "", nil
	}
	confidence := ConfidenceHeuristic
	if hasEvent {
		confidence = ConfidenceHigh
	}
	return true, confidence, evidence
}

func detectMultisigExecution(tx *Transaction, receipt *Receipt) (bool, Confidence, []string) {
	var evidence []string
	confidence := ConfidenceHeuristic

	if receipt.hasTopic(topicExecutionSuccess) {
		evidence = append(evidence, "log:execution_success")
		confidence = ConfidenceHigh
	}
	if receipt.hasTopic(topicExecutionFailure) {
		evidence = append(evidence, "log:execution_failure")
		confidence = ConfidenceHigh
	}
	if sel, ok := tx.selector(); ok && sel == selectorExecTransaction {
		evidence = append(evidence, "selector:exec_transaction")
	}

	return len(evidence) > 0, confidence, evidence
}

func detectTokenTransfer(tx *Transaction, receipt *Receipt) (bool, Confidence, []string) {
	if receipt.hasTopic(topicERC20Transfer) {
		return true, ConfidenceHigh, []string{"log:erc20_transfer"}
	}
	return false, "", nil
}

func detectContractCreation(tx *Transaction, receipt *Receipt) (bool, Confidence, []string) {
	if tx.To == nil {
		return true, ConfidenceHigh, []string{"tx:no_destination"}
	}
	return false, "", nil
}

func detectNativeTransfer(tx *Transaction, receipt *Receipt) (bool, Confidence, []string) {
	if tx.To != nil && len(tx.Input) == 0 && tx.Value != nil && tx.Value.Sign() > 0 {
		return true, ConfidenceHigh, []string{"tx:value_no_calldata"}
	}
	return false, "", nil
}
