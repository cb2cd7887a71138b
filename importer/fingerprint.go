// Package importer reads raw source records (bank-statement-adjacent CSV
// exports today; §6 treats the adapter as an external collaborator, so the
// core's only dependency on it is the *ast.Journal it produces) and tags
// every posting it emits with a fresh fingerprint (§6.2), so the merge
// engine can recognize the same record across repeated import runs.
package importer

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/ledgerkit/ledgerkit/ast"
)

// FingerprintName builds the "fp-<algo>.<version>.<userlabel>" tag name
// spec.md §6.2 specifies for importer-generated fingerprints: algo names
// the import algorithm family, version its numeric revision, userlabel an
// operator-chosen identifier (typically a bank-account nickname).
func FingerprintName(algo string, version int, userlabel string) string {
	return fmt.Sprintf("%s%s.%d.%s", ast.FingerprintPrefix, algo, version, userlabel)
}

// FingerprintValue hashes record with sha256 and returns a URL-safe base64
// encoding of the first 12 bytes of the digest — "typically base64 of a
// hash" per spec.md §6.2, truncated because a fingerprint only needs to be
// unique within one journal, not cryptographically strong.
func FingerprintValue(record []byte) string {
	sum := sha256.Sum256(record)
	return base64.RawURLEncoding.EncodeToString(sum[:12])
}

// legSalt distinguishes postings that would otherwise hash to the same
// content: the two legs CSV import generates from one source record
// (primary account vs. counter account), and any posting index
// GenerateFingerprints backfills by content alone. Without it, postings
// sharing a hash input would collide in the fingerprint index.
func legSalt(record []byte, leg int) []byte {
	out := make([]byte, len(record)+1)
	copy(out, record)
	out[len(record)] = byte(leg)
	return out
}
