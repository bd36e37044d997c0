package bytecode

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Image format version. Bump on any incompatible Program change.
const imageVersion = 1

var imageMagic = "JMB"

// image is the on-disk form of a compiled Program.
type image struct {
	Magic    string        `cbor:"magic"`
	Version  int           `cbor:"version"`
	Code     []Instruction `cbor:"code"`
	Consts   []int64       `cbor:"consts"`
	Symbols  []string      `cbor:"symbols"`
}

// Canonical mode keeps image bytes deterministic for a given Program.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("bytecode: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// EncodeImage serializes a compiled Program to CBOR bytes.
func EncodeImage(p *Program) ([]byte, error) {
	img := image{
		Magic:   imageMagic,
		Version: imageVersion,
		Code:    p.Instructions,
		Consts:  p.Constants,
		Symbols: p.Symbols,
	}
	data, err := cborEncMode.Marshal(&img)
	if err != nil {
		return nil, fmt.Errorf("bytecode: marshal image: %w", err)
	}
	return data, nil
}

// DecodeImage deserializes CBOR bytes back into a Program, validating
// the magic and version header.
func DecodeImage(data []byte) (*Program, error) {
	var img image
	if err := cbor.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("bytecode: unmarshal image: %w", err)
	}
	if img.Magic != imageMagic {
		return nil, fmt.Errorf("bytecode: not a jminus image")
	}
	if img.Version != imageVersion {
		return nil, fmt.Errorf("bytecode: unsupported image version %d", img.Version)
	}
	return &Program{
		Instructions: img.Code,
		Constants:    img.Consts,
		Symbols:      img.Symbols,
	}, nil
}
