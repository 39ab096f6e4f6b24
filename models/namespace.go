package models

import (
	"fmt"
	"strings"
)

// Namespace identifies a single remote collection as a database/collection
// pair, e.g. "todo.items".
type Namespace struct {
	Database   string `json:"db"`
	Collection string `json:"coll"`
}

func NewNamespace(database, collection string) Namespace {
	return Namespace{Database: database, Collection: collection}
}

// String renders the namespace in the canonical "db.coll" form used as a map
// key and as part of the persisted sync-record filter.
func (ns Namespace) String() string {
	return ns.Database + "." + ns.Collection
}

// IsZero reports whether the namespace has not been populated.
func (ns Namespace) IsZero() bool {
	return ns.Database == "" && ns.Collection == ""
}

// ParseNamespace parses the canonical "db.coll" form produced by String.
// The collection part may itself contain dots; only the first dot separates
// the database name.
func ParseNamespace(s string) (Namespace, error) {
	db, coll, ok := strings.Cut(s, ".")
	if !ok || db == "" || coll == "" {
		return Namespace{}, fmt.Errorf("invalid namespace %q: expected db.coll", s)
	}
	return Namespace{Database: db, Collection: coll}, nil
}
