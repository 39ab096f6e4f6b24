package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Acidburn0zzz/docsync/models"
)

// ErrUnsupportedUpdateOperator is returned when an update specifier carries
// an operator other than $set or $unset.
var ErrUnsupportedUpdateOperator = errors.New("unsupported update operator")

// applyUpdateSpecifier applies a {$set, $unset} update specifier to doc and
// returns the new document state. A specifier with no operator keys is
// treated as a full replacement that keeps the document's identity field.
func applyUpdateSpecifier(doc, update models.Document) (models.Document, error) {
	operators := false
	for key := range update {
		if strings.HasPrefix(key, "$") {
			operators = true
			break
		}
	}

	if !operators {
		replacement := models.CloneDocument(update)
		replacement[models.IDField] = doc[models.IDField]
		return replacement, nil
	}

	out := models.CloneDocument(doc)
	for key, value := range update {
		switch key {
		case "$set":
			fields, ok := value.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: $set is not a document", ErrUnsupportedUpdateOperator)
			}
			for path, fieldValue := range fields {
				if err := setAtPath(out, path, fieldValue); err != nil {
					return nil, err
				}
			}
		case "$unset":
			fields, ok := value.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: $unset is not a document", ErrUnsupportedUpdateOperator)
			}
			for path := range fields {
				unsetAtPath(out, path)
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedUpdateOperator, key)
		}
	}

	return out, nil
}

// setAtPath writes value at the dotted path, creating intermediate
// sub-documents as needed. Traversing through a non-document value is an
// error rather than a silent overwrite.
func setAtPath(doc models.Document, path string, value any) error {
	parts := strings.Split(path, ".")
	current := map[string]any(doc)

	for _, part := range parts[:len(parts)-1] {
		next, exists := current[part]
		if !exists {
			child := map[string]any{}
			current[part] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot set %q: %q is not a document", path, part)
		}
		current = child
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// unsetAtPath removes the value at the dotted path. Missing intermediate
// documents make the unset a no-op.
func unsetAtPath(doc models.Document, path string) {
	parts := strings.Split(path, ".")
	current := map[string]any(doc)

	for _, part := range parts[:len(parts)-1] {
		child, ok := current[part].(map[string]any)
		if !ok {
			return
		}
		current = child
	}

	delete(current, parts[len(parts)-1])
}
