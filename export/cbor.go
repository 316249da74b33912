package export

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/turtle3d-xyz/go-turtle3d/skeleton"
)

// EncodeCBOR serializes a skeleton to its compact binary form. Struct
// fields are keyed by small integers, so the encoding is stable across
// field renames and considerably smaller than JSON for point-heavy
// skeletons.
func EncodeCBOR(skel *skeleton.Skeleton) ([]byte, error) {
	data, err := cbor.Marshal(skel)
	if err != nil {
		return nil, fmt.Errorf("encoding skeleton: %w", err)
	}
	return data, nil
}

// DecodeCBOR deserializes a skeleton produced by EncodeCBOR.
func DecodeCBOR(data []byte) (*skeleton.Skeleton, error) {
	var skel skeleton.Skeleton
	if err := cbor.Unmarshal(data, &skel); err != nil {
		return nil, fmt.Errorf("decoding skeleton: %w", err)
	}
	return &skel, nil
}
