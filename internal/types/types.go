package types

import "github.com/andresmejia3/frames/internal/frames"

// FrameRecord is the encoder-facing form of a table entry.
// Words is a slice so JSON and CBOR emit a plain array.
type FrameRecord struct {
	Index int      `json:"index" cbor:"index"`
	Name  string   `json:"name" cbor:"name"`
	Words []uint32 `json:"words" cbor:"words"`
}

// NewFrameRecord copies an entry into a record.
func NewFrameRecord(e frames.Entry) FrameRecord {
	return FrameRecord{
		Index: e.Index,
		Name:  e.Name,
		Words: append([]uint32(nil), e.Frame[:]...),
	}
}
