package codec

import (
	"encoding/binary"
	"math"
)

// reader is a forward-only little-endian cursor over a payload.
// Every read either consumes exactly its width or fails without moving.
type reader struct {
	data   []byte
	offset int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

// pos returns the cursor position.
func (r *reader) pos() int {
	return r.offset
}

// remaining returns the number of unread bytes.
func (r *reader) remaining() int {
	return len(r.data) - r.offset
}

func (r *reader) need(n int) error {
	if r.remaining() < n {
		return &ErrTruncatedInput{Offset: r.offset, Need: n, Have: r.remaining()}
	}
	return nil
}

func (r *reader) readByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.data[r.offset]
	r.offset++
	return b, nil
}

func (r *reader) readInt32() (int32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := int32(binary.LittleEndian.Uint32(r.data[r.offset : r.offset+4]))
	r.offset += 4
	return v, nil
}

func (r *reader) readFloat64() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(r.data[r.offset : r.offset+8]))
	r.offset += 8
	return v, nil
}

// readFloat64s reads n consecutive doubles. The length check happens up
// front so a short block fails before any value is consumed.
func (r *reader) readFloat64s(n int) ([]float64, error) {
	if n < 0 {
		return nil, &ErrMalformedPayload{Reason: "negative value count"}
	}
	if r.remaining()/8 < n {
		return nil, &ErrTruncatedInput{Offset: r.offset, Need: n * 8, Have: r.remaining()}
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(r.data[r.offset : r.offset+8]))
		r.offset += 8
	}
	return values, nil
}

// skipFloat64s advances the cursor past n doubles without decoding them.
func (r *reader) skipFloat64s(n int) error {
	if n < 0 {
		return &ErrMalformedPayload{Reason: "negative value count"}
	}
	if r.remaining()/8 < n {
		return &ErrTruncatedInput{Offset: r.offset, Need: n * 8, Have: r.remaining()}
	}
	r.offset += n * 8
	return nil
}
