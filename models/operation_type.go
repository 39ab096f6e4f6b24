package models

// OperationType classifies the mutation a change event describes.
type OperationType int

const (
	OperationTypeUnknown OperationType = iota
	OperationTypeInsert
	OperationTypeDelete
	OperationTypeReplace
	OperationTypeUpdate
)

// OperationTypeFromRemote maps a wire operationType string to an
// OperationType. Unrecognized values map to OperationTypeUnknown.
func OperationTypeFromRemote(remote string) OperationType {
	switch remote {
	case "insert":
		return OperationTypeInsert
	case "delete":
		return OperationTypeDelete
	case "replace":
		return OperationTypeReplace
	case "update":
		return OperationTypeUpdate
	default:
		return OperationTypeUnknown
	}
}

// ToRemote renders the operation type as its wire string.
func (op OperationType) ToRemote() string {
	switch op {
	case OperationTypeInsert:
		return "insert"
	case OperationTypeDelete:
		return "delete"
	case OperationTypeReplace:
		return "replace"
	case OperationTypeUpdate:
		return "update"
	default:
		return "unknown"
	}
}

func (op OperationType) String() string {
	return op.ToRemote()
}
