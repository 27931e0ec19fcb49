package xdrparse

import "github.com/withobsrvr/txscan/internal/xdrcodec"

// ParseMemo decodes the {none, id, text, hash, return-hash} union.
func ParseMemo(c *Cursor) (Memo, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return Memo{}, err
	}
	switch MemoType(tag) {
	case MemoTypeNone:
		return Memo{Type: MemoTypeNone}, nil
	case MemoTypeID:
		id, err := xdrcodec.Uint64(c)
		if err != nil {
			return Memo{}, err
		}
		return Memo{Type: MemoTypeID, ID: id}, nil
	case MemoTypeText:
		text, err := xdrcodec.BytesPadded(c, MemoTextMaxSize)
		if err != nil {
			return Memo{}, err
		}
		return Memo{Type: MemoTypeText, Text: text}, nil
	case MemoTypeHash:
		hash, err := c.ReadExact(HashSize)
		if err != nil {
			return Memo{}, err
		}
		return Memo{Type: MemoTypeHash, Hash: hash}, nil
	case MemoTypeReturn:
		hash, err := c.ReadExact(HashSize)
		if err != nil {
			return Memo{}, err
		}
		return Memo{Type: MemoTypeReturn, Hash: hash}, nil
	default:
		return Memo{}, ErrMalformedInput
	}
}
