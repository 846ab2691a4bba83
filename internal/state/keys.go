package state

import (
	"fmt"
	"hash/fnv"
	"io"
)

// keyPrefix namespaces completion records in the shared key-value store.
const keyPrefix = "shareSteps:"

// Key derives the storage key for a session. The certificate id is the
// preferred identity; without one the key falls back to a stable hash of
// the document URL, formation name and organization name.
func Key(certID, pdfURL, formationName, orgName string) string {
	if certID != "" {
		return keyPrefix + certID
	}

	h := fnv.New64a()
	io.WriteString(h, pdfURL)
	io.WriteString(h, "|")
	io.WriteString(h, formationName)
	io.WriteString(h, "|")
	io.WriteString(h, orgName)
	return fmt.Sprintf("%s%016x", keyPrefix, h.Sum64())
}
