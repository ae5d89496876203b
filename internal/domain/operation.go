package domain

// OperationKind identifies one of the two model-backed operations.
type OperationKind string

const (
	KindCheck   OperationKind = "check"
	KindEnhance OperationKind = "enhance"
)
