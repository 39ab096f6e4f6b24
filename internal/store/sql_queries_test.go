package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Acidburn0zzz/docsync/models"
)

var queriesNS = models.Namespace{Database: "appdb", Collection: "items"}

func Test_buildSelectDocumentQuery(t *testing.T) {
	query, args, err := buildSelectDocumentQuery(queriesNS, `"d1"`)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from documents")
	require.Contains(t, q, "where")
	require.Contains(t, q, "db_name")
	require.Contains(t, q, "coll_name")
	require.Contains(t, q, "doc_id")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")

	require.Len(t, args, 3)
	assert.Contains(t, args, "appdb")
	assert.Contains(t, args, "items")
	assert.Contains(t, args, `"d1"`)
}

func Test_buildUpsertDocumentQuery(t *testing.T) {
	query, args, err := buildUpsertDocumentQuery(queriesNS, `"d1"`, `{"_id":"d1"}`)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into documents")
	require.Contains(t, q, "on conflict")
	require.Contains(t, q, "excluded.body")

	require.Len(t, args, 4)
	assert.Equal(t, `{"_id":"d1"}`, args[3])
}

func Test_buildDeleteDocumentQuery(t *testing.T) {
	query, args, err := buildDeleteDocumentQuery(queriesNS, `"d1"`)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from documents")
	require.Contains(t, q, "doc_id")
	require.Len(t, args, 3)
}

func Test_buildSelectSyncDocumentsQuery(t *testing.T) {
	tests := []struct {
		name       string
		ns         models.Namespace
		wantFilter bool
	}{
		{name: "namespace filter applied", ns: queriesNS, wantFilter: true},
		{name: "zero namespace selects whole instance", ns: models.Namespace{}, wantFilter: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectSyncDocumentsQuery(tt.ns)
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "from sync_documents")
			require.Contains(t, q, "order by")

			cols := []string{
				"db_name", "coll_name", "doc_id", "doc_id_json",
				"last_known_version", "is_stale", "has_uncommitted_writes", "uncommitted_event",
			}
			for _, c := range cols {
				require.Contains(t, q, c)
			}

			if tt.wantFilter {
				require.Contains(t, q, "where")
				require.Len(t, args, 2)
			} else {
				require.NotContains(t, q, "where")
				require.Empty(t, args)
			}
		})
	}
}

func Test_buildUpsertSyncDocumentRow(t *testing.T) {
	record := SyncDocumentRecord{
		Namespace:            queriesNS,
		DocumentID:           "d1",
		LastKnownVersion:     models.Document{"v": float64(3)},
		IsStale:              false,
		HasUncommittedWrites: true,
		UncommittedEvent:     models.Document{"operationType": "update"},
	}

	query, args, err := buildUpsertSyncDocumentRow(record)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into sync_documents")
	require.Contains(t, q, "on conflict")
	require.Contains(t, q, "excluded.last_known_version")
	require.Contains(t, q, "excluded.uncommitted_event")

	require.Len(t, args, 8)
	assert.Equal(t, "appdb", args[0])
	assert.Equal(t, "items", args[1])
	assert.Equal(t, `"d1"`, args[2])
	assert.Equal(t, `"d1"`, args[3])
	assert.JSONEq(t, `{"v":3}`, args[4].(string))
	assert.Equal(t, false, args[5])
	assert.Equal(t, true, args[6])
	assert.JSONEq(t, `{"operationType":"update"}`, args[7].(string))
}

func Test_buildUpsertSyncDocumentRow_NilColumnsMapToNull(t *testing.T) {
	record := SyncDocumentRecord{
		Namespace:  queriesNS,
		DocumentID: "d2",
	}

	_, args, err := buildUpsertSyncDocumentRow(record)
	require.NoError(t, err)

	require.Len(t, args, 8)
	assert.Nil(t, args[4])
	assert.Nil(t, args[7])
}

func Test_buildUpsertSyncNamespaceQuery(t *testing.T) {
	record := SyncNamespaceRecord{
		Namespace:   queriesNS,
		ResumeToken: models.Document{"ts": float64(42)},
		TokenValid:  true,
	}
	token, err := encodeJSONColumn(record.ResumeToken)
	require.NoError(t, err)

	query, args, err := buildUpsertSyncNamespaceQuery(record, token)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into sync_namespaces")
	require.Contains(t, q, "excluded.resume_token")
	require.Contains(t, q, "excluded.token_valid")

	require.Len(t, args, 4)
	assert.JSONEq(t, `{"ts":42}`, args[2].(string))
	assert.Equal(t, true, args[3])
}
