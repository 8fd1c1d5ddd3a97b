package domain

import "bytes"

// StampEntry is one record of a stamp file: an artifact path tagged with
// its dependency class.
type StampEntry struct {
	Path string
	Type DependencyType
}

// EncodeStampEntries serializes entries into the binary stamp format:
// variable-length records separated by a single zero byte, each starting
// with the class tag byte followed by the UTF-8 path.
func EncodeStampEntries(entries []StampEntry) []byte {
	var buf bytes.Buffer
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(0)
		}
		buf.WriteByte(e.Type.TagByte())
		buf.WriteString(e.Path)
	}
	return buf.Bytes()
}

// DecodeStampEntries parses the binary stamp format produced by the
// per-package build tool. Empty records (consecutive separators) are
// skipped; a record with an unrecognized tag byte fails the whole parse.
func DecodeStampEntries(data []byte) ([]StampEntry, error) {
	var entries []StampEntry
	for part := range bytes.SplitSeq(data, []byte{0}) {
		if len(part) == 0 {
			continue
		}
		dep, err := ParseDependencyTag(part[0])
		if err != nil {
			return nil, err
		}
		entries = append(entries, StampEntry{
			Path: string(part[1:]),
			Type: dep,
		})
	}
	return entries, nil
}
