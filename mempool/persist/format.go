package persist

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cryptonote-go/txpool/chainhash"
)

// Magic and FormatVersion identify the snapshot file format. A file
// starting with a different magic, or a version this build doesn't
// understand, is treated as corrupt and discarded rather than parsed.
var Magic = [4]byte{'C', 'N', 'M', 'P'}

const FormatVersion uint32 = 1

// ErrBadMagic and ErrBadVersion are returned by ReadSnapshot when the
// file header doesn't match what this package writes.
var (
	ErrBadMagic   = fmt.Errorf("persist: bad snapshot magic")
	ErrBadVersion = fmt.Errorf("persist: unsupported snapshot version")
)

// Record is the on-disk representation of one pooled transaction.
type Record struct {
	ID               chainhash.Hash
	BlobSize         uint64
	Fee              uint64
	KeptByBlock      bool
	ReceiveTime      int64
	MaxUsedHeight    uint64
	MaxUsedHash      chainhash.Hash
	LastFailedHeight uint64
	LastFailedHash   chainhash.Hash
	TxBlob           []byte
}

// DeletedRecord is the on-disk representation of one
// recentlyDeletedTransactions entry.
type DeletedRecord struct {
	ID   chainhash.Hash
	Time int64
}

// WriteSnapshot writes the header, every record, and the trailer to w, in
// the exact layout described by §6: magic+version header, a varint
// record count followed by the records themselves, then a varint count
// of deleted records followed by the (id, time) pairs.
func WriteSnapshot(w io.Writer, records []Record, deleted []DeletedRecord) error {
	if _, err := w.Write(Magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, FormatVersion); err != nil {
		return err
	}

	if err := WriteVarint(w, uint64(len(records))); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writeRecord(w, rec); err != nil {
			return err
		}
	}

	if err := WriteVarint(w, uint64(len(deleted))); err != nil {
		return err
	}
	for _, d := range deleted {
		if _, err := w.Write(d.ID[:]); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, d.Time); err != nil {
			return err
		}
	}

	return nil
}

func writeRecord(w io.Writer, rec Record) error {
	if _, err := w.Write(rec.ID[:]); err != nil {
		return err
	}
	if err := WriteVarint(w, rec.BlobSize); err != nil {
		return err
	}
	if err := WriteVarint(w, rec.Fee); err != nil {
		return err
	}
	keptByte := byte(0)
	if rec.KeptByBlock {
		keptByte = 1
	}
	if _, err := w.Write([]byte{keptByte}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, rec.ReceiveTime); err != nil {
		return err
	}
	if err := WriteVarint(w, rec.MaxUsedHeight); err != nil {
		return err
	}
	if _, err := w.Write(rec.MaxUsedHash[:]); err != nil {
		return err
	}
	if err := WriteVarint(w, rec.LastFailedHeight); err != nil {
		return err
	}
	if _, err := w.Write(rec.LastFailedHash[:]); err != nil {
		return err
	}
	if err := WriteVarint(w, uint64(len(rec.TxBlob))); err != nil {
		return err
	}
	if _, err := w.Write(rec.TxBlob); err != nil {
		return err
	}
	return nil
}

// ReadSnapshot parses the format WriteSnapshot produces. It returns
// ErrBadMagic/ErrBadVersion for a file that doesn't look like one of
// ours; callers should treat that as corrupt-state (§7's corrupt_state)
// and start from an empty pool rather than propagate the error further.
func ReadSnapshot(r io.Reader) (records []Record, deleted []DeletedRecord, err error) {
	br := bufio.NewReader(r)

	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, nil, err
	}
	if magic != Magic {
		return nil, nil, ErrBadMagic
	}

	var version uint32
	if err := binary.Read(br, binary.BigEndian, &version); err != nil {
		return nil, nil, err
	}
	if version != FormatVersion {
		return nil, nil, ErrBadVersion
	}

	count, err := ReadVarint(br)
	if err != nil {
		return nil, nil, err
	}
	records = make([]Record, 0, count)
	for i := uint64(0); i < count; i++ {
		rec, err := readRecord(br)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}

	deletedCount, err := ReadVarint(br)
	if err != nil {
		return nil, nil, err
	}
	deleted = make([]DeletedRecord, 0, deletedCount)
	for i := uint64(0); i < deletedCount; i++ {
		var d DeletedRecord
		if _, err := io.ReadFull(br, d.ID[:]); err != nil {
			return nil, nil, err
		}
		if err := binary.Read(br, binary.BigEndian, &d.Time); err != nil {
			return nil, nil, err
		}
		deleted = append(deleted, d)
	}

	return records, deleted, nil
}

func readRecord(br *bufio.Reader) (Record, error) {
	var rec Record

	if _, err := io.ReadFull(br, rec.ID[:]); err != nil {
		return rec, err
	}

	var err error
	if rec.BlobSize, err = ReadVarint(br); err != nil {
		return rec, err
	}
	if rec.Fee, err = ReadVarint(br); err != nil {
		return rec, err
	}

	keptByte, err := br.ReadByte()
	if err != nil {
		return rec, err
	}
	rec.KeptByBlock = keptByte != 0

	if err := binary.Read(br, binary.BigEndian, &rec.ReceiveTime); err != nil {
		return rec, err
	}

	if rec.MaxUsedHeight, err = ReadVarint(br); err != nil {
		return rec, err
	}
	if _, err := io.ReadFull(br, rec.MaxUsedHash[:]); err != nil {
		return rec, err
	}
	if rec.LastFailedHeight, err = ReadVarint(br); err != nil {
		return rec, err
	}
	if _, err := io.ReadFull(br, rec.LastFailedHash[:]); err != nil {
		return rec, err
	}

	blobLen, err := ReadVarint(br)
	if err != nil {
		return rec, err
	}
	if blobLen > 0 {
		rec.TxBlob = make([]byte, blobLen)
		if _, err := io.ReadFull(br, rec.TxBlob); err != nil {
			return rec, err
		}
	}

	return rec, nil
}
