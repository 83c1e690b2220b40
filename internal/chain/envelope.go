package chain

// DecodeEnvelope determines the wire-level envelope kind from the fields a
// transaction carries. Each envelope generation only ever adds fields over
// the previous one, so checking the most specific markers first can never
// misclassify an older envelope as newer. The function is pure and total:
// every well-formed transaction maps to exactly one envelope.
func DecodeEnvelope(tx *Transaction) Envelope {
	switch {
	case tx.BlobFeeCap != nil || len(tx.BlobHashes) > 0:
		return EnvelopeBlob
	case tx.GasFeeCap != nil || tx.GasTipCap != nil:
		return EnvelopeDynamicFee
	case tx.HasAccessList:
		return EnvelopeAccessList
	default:
		return EnvelopeLegacy
	}
}
