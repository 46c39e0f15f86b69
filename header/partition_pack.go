package header

import (
	"github.com/ugparu/mxfheader/internal/byteorder"
	"github.com/ugparu/mxfheader/mxferrors"
)

// PartitionPack is the decoded fixed-schema Partition Pack record that
// opens every MXF partition.
type PartitionPack struct {
	MajorVersion, MinorVersion uint16
	KAGSize                    uint32
	ThisPartition              uint64
	PreviousPartition          uint64
	FooterPartition            uint64
	HeaderByteCount            uint64
	IndexByteCount             uint64
	IndexSID                   uint32
	BodyOffset                 uint64
	BodySID                    uint32
	OperationalPattern         [16]byte
	EssenceContainerCount      uint32
}

// decodePartitionPack decodes the fixed-layout Partition Pack value
// (everything after the KLV key+length the caller already consumed).
// It tolerates a trailing essence-container UL batch it does not
// retain individually, recording only its declared count.
func decodePartitionPack(value []byte) (PartitionPack, error) {
	const fixedLen = 2 + 2 + 4 + 8 + 8 + 8 + 8 + 8 + 4 + 8 + 4 + 16 + 8
	if len(value) < fixedLen {
		return PartitionPack{}, &mxferrors.InvalidPartitionPackError{Reason: "value shorter than fixed partition pack layout"}
	}

	var pp PartitionPack
	off := 0
	pp.MajorVersion = byteorder.U16BE(value[off:])
	off += 2
	pp.MinorVersion = byteorder.U16BE(value[off:])
	off += 2
	pp.KAGSize = byteorder.U32BE(value[off:])
	off += 4
	pp.ThisPartition = byteorder.U64BE(value[off:])
	off += 8
	pp.PreviousPartition = byteorder.U64BE(value[off:])
	off += 8
	pp.FooterPartition = byteorder.U64BE(value[off:])
	off += 8
	pp.HeaderByteCount = byteorder.U64BE(value[off:])
	off += 8
	pp.IndexByteCount = byteorder.U64BE(value[off:])
	off += 8
	pp.IndexSID = byteorder.U32BE(value[off:])
	off += 4
	pp.BodyOffset = byteorder.U64BE(value[off:])
	off += 8
	pp.BodySID = byteorder.U32BE(value[off:])
	off += 4
	copy(pp.OperationalPattern[:], value[off:off+16])
	off += 16
	ecBatchCountOffset := off
	pp.EssenceContainerCount = byteorder.U32BE(value[ecBatchCountOffset:])

	return pp, nil
}
