package header

import (
	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/errlog"
	"github.com/ugparu/mxfheader/klv"
	"github.com/ugparu/mxfheader/mxferrors"
	"github.com/ugparu/mxfheader/primer"
	"github.com/ugparu/mxfheader/ul"
	"github.com/ugparu/mxfheader/utils/logger"
)

// New parses a header partition from r, which must be positioned at
// absolute offset 0 per the IMF Essence Component profile's placement
// constraint. The byte source is borrowed only for the duration of
// this call.
//
// The scan of structural metadata is bounded by the Partition Pack's
// declared HeaderByteCount, measured from the first byte following the
// Partition Pack's own KLV — the same boundary ST 377-1 uses to mark
// the end of header metadata, covering the Primer Pack and every
// structural set that follows it. This avoids treating end-of-stream
// as a parse failure for a header partition that is the entire byte
// source (as in a carved/extracted header, or most test fixtures).
func New(r klv.ByteProvider) (*HeaderPartition, error) {
	log := errlog.New()

	if r.CurrentOffset() != 0 {
		return nil, &mxferrors.UnexpectedOffsetError{Expected: 0, Actual: r.CurrentOffset()}
	}

	pp, err := readPartitionPack(r)
	if err != nil {
		return nil, err
	}
	headerMetadataEnd := r.CurrentOffset() + int64(pp.HeaderByteCount)

	primerTable, err := readPrimer(r)
	if err != nil {
		return nil, err
	}

	b := newBuilder(log)
	prefaceCount := 0

	for r.CurrentOffset() < headerMetadataEnd {
		hdr, err := klv.ReadHeader(r)
		if err != nil {
			return nil, err
		}

		value, err := klv.ReadExact(r, hdr.VSize)
		if err != nil {
			return nil, err
		}

		if ul.IsFillItemKey(ul.FromBytes(hdr.Key[:])) {
			continue // trailing fill to the next KAG boundary
		}

		key := ul.FromBytes(hdr.Key[:])
		obj, class, decodeErr := bo.Decode(key, value, primerTable)
		if decodeErr != nil {
			log.Error("failed to decode structural metadata set", decodeErr)
			logger.Warningf("header", "failed to decode set %s: %v", key.String(), decodeErr)
			continue
		}
		if obj == nil {
			log.Warn("unknown structural metadata set, value skipped", nil)
			continue
		}

		if class == ul.SetClassPreface {
			prefaceCount++
		}
		b.addByteObject(obj)
	}

	if prefaceCount > 1 {
		log.Fatal("more than one preface set found", &mxferrors.MultiplePrefaceError{Count: prefaceCount})
	} else if prefaceCount == 0 {
		log.Fatal("no preface set found", &mxferrors.NoPrefaceError{})
	}

	if fatal := log.NumFatal(); fatal > 0 {
		return nil, &mxferrors.ConstructionFailedError{FatalCount: fatal}
	}

	g := b.buildGraph()
	order, err := g.TopologicalSort()
	if err != nil {
		return nil, err
	}

	if err := b.materialize(order); err != nil {
		return nil, err
	}

	return newHeaderPartition(pp, primerTable, b, log), nil
}

// readPartitionPack reads the mandatory Partition Pack KLV and
// validates it identifies as a Header Partition.
func readPartitionPack(r klv.ByteProvider) (PartitionPack, error) {
	hdr, err := klv.ReadHeader(r)
	if err != nil {
		return PartitionPack{}, err
	}

	key := ul.FromBytes(hdr.Key[:])
	if !ul.IsHeaderPartitionPackKey(key) {
		return PartitionPack{}, &mxferrors.InvalidPartitionPackError{Reason: "key is not a header partition pack"}
	}

	value, err := klv.ReadExact(r, hdr.VSize)
	if err != nil {
		return PartitionPack{}, err
	}

	return decodePartitionPack(value)
}

// readPrimer reads the Primer Pack, tolerating at most one Fill Item
// KLV interposed between the Partition Pack and the Primer Pack.
func readPrimer(r klv.ByteProvider) (*primer.Table, error) {
	hdr, err := klv.ReadHeader(r)
	if err != nil {
		return nil, err
	}
	key := ul.FromBytes(hdr.Key[:])

	if ul.IsFillItemKey(key) {
		if err := klv.Skip(r, hdr.VSize); err != nil {
			return nil, err
		}

		hdr, err = klv.ReadHeader(r)
		if err != nil {
			return nil, err
		}
		key = ul.FromBytes(hdr.Key[:])

		if ul.IsFillItemKey(key) {
			// A second Fill in this slot is fatal: at most one is
			// permitted between the partition pack and the primer.
			return nil, &mxferrors.MissingPrimerError{}
		}
	}

	if !ul.IsPrimerPackKey(key) {
		return nil, &mxferrors.MissingPrimerError{}
	}

	value, err := klv.ReadExact(r, hdr.VSize)
	if err != nil {
		return nil, err
	}

	return primer.Decode(value)
}
