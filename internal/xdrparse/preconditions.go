package xdrparse

import "github.com/withobsrvr/txscan/internal/xdrcodec"

type preconditionType uint32

const (
	precondNone preconditionType = 0
	precondTime preconditionType = 1
	precondV2   preconditionType = 2
)

func parseTimeBounds(c *Cursor) (TimeBounds, error) {
	min, err := xdrcodec.Uint64(c)
	if err != nil {
		return TimeBounds{}, err
	}
	max, err := xdrcodec.Uint64(c)
	if err != nil {
		return TimeBounds{}, err
	}
	return TimeBounds{MinTime: min, MaxTime: max}, nil
}

func parseLedgerBounds(c *Cursor) (LedgerBounds, error) {
	min, err := xdrcodec.Uint32(c)
	if err != nil {
		return LedgerBounds{}, err
	}
	max, err := xdrcodec.Uint32(c)
	if err != nil {
		return LedgerBounds{}, err
	}
	return LedgerBounds{MinLedger: min, MaxLedger: max}, nil
}

// ParsePreconditions decodes the {none, time, v2} union. A legacy
// "time" precondition is normalized into the v2 shape with only
// TimeBounds present.
func ParsePreconditions(c *Cursor) (Preconditions, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return Preconditions{}, err
	}
	switch preconditionType(tag) {
	case precondNone:
		return Preconditions{}, nil
	case precondTime:
		tb, err := parseTimeBounds(c)
		if err != nil {
			return Preconditions{}, err
		}
		return Preconditions{TimeBoundsPresent: true, TimeBounds: tb}, nil
	case precondV2:
		var p Preconditions
		tb, present, err := xdrcodec.Optional(c, parseTimeBounds)
		if err != nil {
			return Preconditions{}, err
		}
		p.TimeBoundsPresent, p.TimeBounds = present, tb

		lb, present, err := xdrcodec.Optional(c, parseLedgerBounds)
		if err != nil {
			return Preconditions{}, err
		}
		p.LedgerBoundsPresent, p.LedgerBounds = present, lb

		seq, present, err := xdrcodec.Optional(c, xdrcodec.Int64)
		if err != nil {
			return Preconditions{}, err
		}
		p.MinSeqNumPresent, p.MinSeqNum = present, seq

		p.MinSeqAge, err = xdrcodec.Uint64(c)
		if err != nil {
			return Preconditions{}, err
		}
		p.MinSeqLedgerGap, err = xdrcodec.Uint32(c)
		if err != nil {
			return Preconditions{}, err
		}

		count, err := xdrcodec.Uint32(c)
		if err != nil {
			return Preconditions{}, err
		}
		if count > MaxExtraSigners {
			return Preconditions{}, ErrMalformedInput
		}
		if count > 0 {
			p.ExtraSigners = make([]SignerKey, count)
			for i := range p.ExtraSigners {
				p.ExtraSigners[i], err = ParseSignerKey(c)
				if err != nil {
					return Preconditions{}, err
				}
			}
		}
		return p, nil
	default:
		return Preconditions{}, ErrMalformedInput
	}
}
