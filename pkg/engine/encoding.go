package engine

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// detectAndDecode normalizes raw file bytes to UTF-8 before they reach a
// parser. spec.md is silent on non-UTF-8 input, but every parser in this
// module assumes valid UTF-8 text, so this runs unconditionally ahead of
// parsing — adapted from the teacher's EncodingHandler.DetectAndDecode,
// minus the binary-sniffing half that has no equivalent in this domain.
func detectAndDecode(content []byte) ([]byte, error) {
	enc, name, certain := charset.DetermineEncoding(content, "")
	if !certain || enc == nil {
		// Treat as already UTF-8 when detection is uncertain: these are
		// hand-authored structured files, not arbitrary web content, and
		// misdetecting a short ASCII CSV/LOG line as another encoding is
		// far likelier than it genuinely being one.
		return content, nil
	}

	decoder := enc.NewDecoder()
	reader := transform.NewReader(bytes.NewReader(content), decoder)
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to convert from %q: %w", name, err)
	}
	return decoded, nil
}
