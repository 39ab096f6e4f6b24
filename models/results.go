package models

// RemoteInsertOneResult is the structured result of a remote insert call.
type RemoteInsertOneResult struct {
	// InsertedID is the identity of the inserted document as acknowledged by
	// the remote side.
	InsertedID any `json:"insertedId"`
}

// RemoteUpdateResult is the structured result of a remote update call.
type RemoteUpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`

	// UpsertedID is the identity of the upserted document when the update ran
	// with upsert=true and matched nothing; nil otherwise.
	UpsertedID any `json:"upsertedId,omitempty"`
}

// RemoteDeleteResult is the structured result of a remote delete call.
type RemoteDeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
