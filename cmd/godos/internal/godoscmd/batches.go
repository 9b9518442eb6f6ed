package godoscmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/gordian-engine/godos/odtypes"
	"github.com/gordian-engine/godos/odwire"
)

// scanBatches reads one transaction payload per non-empty line of r,
// calling emit with every batch of size transactions and once more with any remainder.
func scanBatches(r io.Reader, size int, emit func(odtypes.Batch)) error {
	if size <= 0 {
		return errors.New("batch size must be positive")
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 2*odwire.MaxBatchesRequestSize)

	var b odtypes.Batch
	for s.Scan() {
		line := bytes.TrimSpace(s.Bytes())
		if len(line) == 0 {
			continue
		}

		b.Transactions = append(b.Transactions, odtypes.Transaction{
			Payload: bytes.Clone(line),
		})
		if len(b.Transactions) == size {
			emit(b)
			b = odtypes.Batch{}
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("failed to read transactions: %w", err)
	}

	if len(b.Transactions) > 0 {
		emit(b)
	}
	return nil
}
