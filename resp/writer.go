package resp

import (
	"io"
	"strconv"

	"github.com/shinkou/kyvi/store"
)

// Encoder serializes store.Value replies onto the wire. Values accumulate in
// a growable byte buffer and are flushed to the underlying writer in one
// shot. It handles every reply variant the protocol defines, including
// BigInteger, Double, Boolean, BulkError, Null and EmptyList.
type Encoder struct {
	w   io.Writer
	buf []byte
	err error
}

// NewEncoder wraps w in an Encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, buf: make([]byte, 0, 256)}
}

// Err returns the encoder's sticky error state, if any.
func (e *Encoder) Err() error { return e.err }

// Encode appends v's wire encoding to the internal buffer. It does not write
// to the underlying io.Writer until Flush is called.
func (e *Encoder) Encode(v store.Value) error {
	if e.err != nil {
		return e.err
	}
	e.buf = appendValue(e.buf, v)
	return nil
}

// Flush writes any buffered bytes to the underlying writer.
func (e *Encoder) Flush() error {
	if e.err == nil && len(e.buf) > 0 {
		_, e.err = e.w.Write(e.buf)
		e.buf = e.buf[:0]
	}
	return e.err
}

func appendValue(buf []byte, v store.Value) []byte {
	switch v.Kind {
	case store.KindNull:
		return append(buf, '_', '\r', '\n')
	case store.KindSimpleString:
		return appendLine(buf, '+', v.Str)
	case store.KindSimpleError:
		return appendLine(buf, '-', v.Str)
	case store.KindInteger:
		return appendIntLine(buf, ':', v.Int)
	case store.KindBigInteger:
		return appendLine(buf, '(', v.Big)
	case store.KindDouble:
		bufgrow(&buf, 1+32+2)
		buf = append(buf, ',')
		buf = appendFloat(buf, v.Float, 64)
		return append(buf, '\r', '\n')
	case store.KindBoolean:
		b := byte('f')
		if v.Bool {
			b = 't'
		}
		return append(buf, '#', b, '\r', '\n')
	case store.KindBulkString:
		return appendBulk(buf, '$', v.Str)
	case store.KindBulkError:
		return appendBulk(buf, '!', v.Str)
	case store.KindList, store.KindEmptyList, store.KindSet:
		items := v.List
		if v.Kind == store.KindSet {
			items = make([]store.Value, 0, len(v.SetOrder))
			for _, hk := range v.SetOrder {
				items = append(items, v.Set[hk])
			}
		}
		buf = appendArrayHeader(buf, len(items))
		for _, item := range items {
			buf = appendValue(buf, item)
		}
		return buf
	case store.KindMap:
		buf = appendArrayHeader(buf, 2*len(v.Map))
		for _, f := range v.MapOrder {
			buf = appendValue(buf, store.BulkString(f))
			buf = appendValue(buf, v.Map[f])
		}
		return buf
	}
	return buf
}

// EncodeRequest writes one request in the wire grammar (an array of bulk
// strings) straight to w -- the same shape Parser.Next reads back. Used by
// server/snapshot.go to serialize the store as a replayable request stream:
// an array header followed by one bulk string per argument, written
// directly to an io.Writer.
func EncodeRequest(w io.Writer, args []string) error {
	buf := appendArrayHeader(nil, len(args))
	for _, a := range args {
		buf = appendBulk(buf, '$', a)
	}
	_, err := w.Write(buf)
	return err
}

func appendArrayHeader(buf []byte, length int) []byte {
	bufgrow(&buf, 1+intBase10MaxLen+2)
	buf = append(buf, '*')
	buf = strconv.AppendInt(buf, int64(length), 10)
	return append(buf, '\r', '\n')
}

func appendLine(buf []byte, sigil byte, data string) []byte {
	bufgrow(&buf, 1+len(data)+2)
	buf = append(buf, sigil)
	buf = append(buf, data...)
	return append(buf, '\r', '\n')
}

func appendBulk(buf []byte, sigil byte, data string) []byte {
	bufgrow(&buf, 1+intBase10MaxLen+2+len(data)+2)
	buf = append(buf, sigil)
	buf = strconv.AppendInt(buf, int64(len(data)), 10)
	buf = append(buf, '\r', '\n')
	buf = append(buf, data...)
	return append(buf, '\r', '\n')
}

func appendIntLine(buf []byte, sigil byte, v int64) []byte {
	bufgrow(&buf, 1+intBase10MaxLen+2)
	buf = append(buf, sigil)
	buf = strconv.AppendInt(buf, v, 10)
	return append(buf, '\r', '\n')
}
