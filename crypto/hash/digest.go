package hash

import (
	"encoding/binary"
	"math/bits"
)

// compressor is the algorithm-specific half of a digest context: it owns the
// accumulator words and the byte order used to decode blocks, encode the
// length field and serialize the digest.
type compressor interface {
	// reset loads the initial accumulator values.
	reset()
	// block compresses one 64-byte block into the accumulator.
	block(p *[BlockSize]byte)
	// putLength stores the message length in bits into an 8-byte field.
	putLength(b []byte, length uint64)
	// appendSum appends the serialized accumulator to b.
	appendSum(b []byte) []byte
	// wipe zeroes the accumulator.
	wipe()
}

// digest is the Update/Final skeleton shared by MD5 and SHA-1.
type digest struct {
	algo HashingAlgorithm
	size int
	c    compressor

	buf    [BlockSize]byte
	length uint64 // message length in bits
	status Status
	err    error // what corrupted the context, if anything
}

var _ Hasher = (*digest)(nil)

func newDigest(algo HashingAlgorithm, c compressor) *digest {
	d := &digest{
		algo: algo,
		size: algo.Size(),
		c:    c,
	}
	c.reset()
	return d
}

func (d *digest) Algorithm() HashingAlgorithm { return d.algo }

func (d *digest) Size() int { return d.size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Status() Status { return d.status }

// pending returns the number of buffered bytes not yet compressed.
func (d *digest) pending() int {
	return int((d.length >> 3) & (BlockSize - 1))
}

func (d *digest) checkActive(op string) error {
	if d == nil {
		return newNullInputErrorf("%s called on a nil context", op)
	}
	if d.status != Active {
		return StateError{Op: op, Status: d.status, Cause: d.err}
	}
	return nil
}

// Update appends data to the message. Full blocks are compressed straight
// from data; only the trailing partial block is copied into the context.
//
// If the total message length would no longer fit the 64-bit bit counter, the
// context is corrupted and an OverflowError is returned. Nothing from data is
// absorbed in that case.
func (d *digest) Update(data []byte) error {
	if err := d.checkActive("update"); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	hi, added := bits.Mul64(uint64(len(data)), 8)
	total, carry := bits.Add64(d.length, added, 0)
	if hi != 0 || carry != 0 {
		d.err = OverflowError{Bits: d.length, Added: uint64(len(data))}
		d.status = Corrupted
		return d.err
	}

	index := d.pending()
	d.length = total

	if len(data) >= BlockSize-index {
		n := copy(d.buf[index:], data)
		d.c.block(&d.buf)
		data = data[n:]
		for len(data) >= BlockSize {
			d.c.block((*[BlockSize]byte)(data))
			data = data[BlockSize:]
		}
		index = 0
	}
	copy(d.buf[index:], data)
	return nil
}

// Write implements io.Writer on top of Update.
func (d *digest) Write(p []byte) (int, error) {
	if err := d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Final appends the 0x80 marker, zero padding up to byte 56 of a block and
// the 64-bit message length, then serializes the accumulator.
//
// The context is wiped and marked Finalized on return; calling Final again
// returns a StateError.
func (d *digest) Final() (Hash, error) {
	if err := d.checkActive("final"); err != nil {
		return nil, err
	}
	defer d.wipe()

	index := d.pending()
	d.buf[index] = 0x80
	index++

	// no room left for the length field: pad out this block and start another
	if index > lengthOffset {
		zero(d.buf[index:])
		d.c.block(&d.buf)
		index = 0
	}
	zero(d.buf[index:lengthOffset])
	d.c.putLength(d.buf[lengthOffset:], d.length)
	d.c.block(&d.buf)

	return d.c.appendSum(make(Hash, 0, d.size)), nil
}

func (d *digest) wipe() {
	d.c.wipe()
	zero(d.buf[:])
	d.length = 0
	d.status = Finalized
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// decodeWords reads a block as sixteen 32-bit words in the given byte order.
func decodeWords(order binary.ByteOrder, w *[16]uint32, p *[BlockSize]byte) {
	for i := range w {
		w[i] = order.Uint32(p[4*i:])
	}
}

// appendWords serializes words in the given byte order.
func appendWords(order binary.ByteOrder, b []byte, words []uint32) []byte {
	var tmp [4]byte
	for _, v := range words {
		order.PutUint32(tmp[:], v)
		b = append(b, tmp[:]...)
	}
	return b
}
