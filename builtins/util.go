package builtins

import (
	"hash/crc32"
	"strconv"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/vfs"
)

// crc32Table is the reflected CRC-32 table for polynomial 0xEDB88320 —
// the same table the standard library builds for crc32.IEEE. §6's
// `cksum` spec calls for an init-0, no-final-xor variant of that same
// polynomial, which the stdlib's ChecksumIEEE doesn't expose directly (it
// hard-codes the init/xorout of 0xFFFFFFFF), so cksum wraps this table
// with its own init/xorout instead of reaching for a third-party CRC
// library — there is none in the pack, and the polynomial table itself
// still comes from hash/crc32 rather than being reimplemented by hand.
var crc32Table = crc32.MakeTable(crc32.IEEE)

// crc32Checksum computes CRC-32 with polynomial 0xEDB88320, init 0, and
// no final XOR (§6, §8: 65536 bytes of 'A' must checksum to 0xA09B0680).
func crc32Checksum(data []byte) uint32 {
	crc := uint32(0)
	for _, b := range data {
		crc = crc32Table[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}

// blockSize is the default copy granularity for cp/dd (§6).
const blockSize = 512

// streamCopy reads src in bounded blocks and writes them to dst starting
// at dstOffset, tolerating Empty (EOF) as a clean stop rather than an
// error — shared between cp and dd because both descend from the
// original firmware's common streaming-copy base (§3 "Supplemented
// features": DirectDataScript). shouldStop is polled between blocks for
// cooperative cancellation; count caps the number of blocks copied (0
// means unbounded).
func streamCopy(src vfs.Node, srcOffset uint64, dst vfs.Node, dstOffset uint64, bs int, count int, shouldStop func() bool) (copied uint64, kind errkind.Kind) {
	if bs <= 0 {
		bs = blockSize
	}
	buf := make([]byte, bs)
	blocks := 0
	for {
		if shouldStop != nil && shouldStop() {
			return copied, errkind.Timeout
		}
		if count > 0 && blocks >= count {
			return copied, errkind.Ok
		}

		n, kind := src.Read(vfs.FieldData, srcOffset, buf)
		if kind == errkind.Empty {
			return copied, errkind.Ok
		}
		if kind != errkind.Ok {
			return copied, kind
		}
		if n == 0 {
			return copied, errkind.Ok
		}

		if _, kind := dst.Write(vfs.FieldData, dstOffset, buf[:n]); kind != errkind.Ok {
			return copied, kind
		}

		srcOffset += uint64(n)
		dstOffset += uint64(n)
		copied += uint64(n)
		blocks++
	}
}

// readAll collects a node's entire FieldData payload, used by commands
// (cksum, sh, mount) that need the whole content rather than a streamed
// pass.
func readAll(node vfs.Node) ([]byte, errkind.Kind) {
	var out []byte
	buf := make([]byte, 512)
	var offset uint64
	for {
		n, kind := node.Read(vfs.FieldData, offset, buf)
		if kind == errkind.Empty {
			return out, errkind.Ok
		}
		if kind != errkind.Ok {
			return nil, kind
		}
		if n == 0 {
			return out, errkind.Ok
		}
		out = append(out, buf[:n]...)
		offset += uint64(n)
	}
}

// atoiOr parses s as a decimal int, falling back to def on failure —
// used by dd's numeric flags, which the spec does not require to be
// validated strictly.
func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
