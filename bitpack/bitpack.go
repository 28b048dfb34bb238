// Package bitpack stores fixed width unsigned fields back to back in a byte
// buffer, least significant bit first.
package bitpack

import "github.com/jsphweid/tunepack/util"

const MaxBits = 32

// Size is the number of bytes needed for count fields of width bits.
func Size(count int, bits int) int {
	return util.CeilDiv(count*bits, 8)
}

// Write ORs the low numBits of value into buf starting at absolute bit
// bitOffset. The target bits must be zero. No bounds checking is done.
func Write(buf []byte, bitOffset int, numBits int, value uint32) {
	remaining := numBits
	head := bitOffset
	for remaining > 0 {
		byteIdx := head / 8
		startBit := head % 8
		n := util.Min(8-startBit, remaining)

		mask := uint32(1)<<n - 1
		buf[byteIdx] |= byte((value & mask) << startBit)

		remaining -= n
		head += n
		value >>= n
	}
}

// Read is the inverse of Write.
func Read(buf []byte, bitOffset int, numBits int) uint32 {
	var value uint32
	remaining := numBits
	head := bitOffset
	shift := 0
	for remaining > 0 {
		byteIdx := head / 8
		startBit := head % 8
		n := util.Min(8-startBit, remaining)

		mask := uint32(1)<<n - 1
		value |= ((uint32(buf[byteIdx]) >> startBit) & mask) << shift

		remaining -= n
		head += n
		shift += n
	}
	return value
}

// Pack writes each value at offset i*bits into a fresh buffer.
func Pack(values []uint32, bits int) []byte {
	buf := make([]byte, Size(len(values), bits))
	for i, v := range values {
		Write(buf, i*bits, bits, v)
	}
	return buf
}

func Unpack(buf []byte, count int, bits int) []uint32 {
	res := make([]uint32, count)
	for i := range res {
		res[i] = Read(buf, i*bits, bits)
	}
	return res
}
