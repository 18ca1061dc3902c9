package step

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"rsc.io/ordered"
)

// Partition-key encodings carry a one-byte tag so the two encoders can never
// produce colliding keys.
const (
	partitionOrdered byte = 'o'
	partitionMsgpack byte = 'm'
)

// PartitionKey encodes the values of keys in t into a comparable string.
// A missing key is encoded the same way as an explicit nil.
func PartitionKey(t Tuple, keys []string) (string, error) {
	vals := make([]any, len(keys))
	for i, k := range keys {
		vals[i] = t[k]
	}

	if ordered.CanEncode(vals...) {
		return string(partitionOrdered) + string(ordered.Encode(vals...)), nil
	}

	var buf bytes.Buffer

	buf.WriteByte(partitionMsgpack)

	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)

	if err := enc.Encode(vals); err != nil {
		return "", fmt.Errorf("failed to encode partition key %v: %w", keys, err)
	}

	return buf.String(), nil
}
