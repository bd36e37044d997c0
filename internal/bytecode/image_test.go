package bytecode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func sampleProgram() *Program {
	p := NewProgram()
	p.Emit(OpConstant, p.AddConstant(5))
	p.Emit(OpDefineVar, p.Intern("x"))
	p.Emit(OpLoadVar, 0)
	p.Emit(OpPrint, 0)
	p.Emit(OpHalt, 0)
	return p
}

func TestImageRoundTrip(t *testing.T) {
	original := sampleProgram()

	data, err := EncodeImage(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeImage(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if decoded.Len() != original.Len() {
		t.Fatalf("instruction count: got %d, want %d", decoded.Len(), original.Len())
	}
	for i := range original.Instructions {
		if decoded.Instructions[i] != original.Instructions[i] {
			t.Errorf("instruction %d: got %v, want %v",
				i, decoded.Instructions[i], original.Instructions[i])
		}
	}
	if len(decoded.Constants) != 1 || decoded.Constants[0] != 5 {
		t.Errorf("constants: got %v, want [5]", decoded.Constants)
	}
	if len(decoded.Symbols) != 1 || decoded.Symbols[0] != "x" {
		t.Errorf("symbols: got %v, want [x]", decoded.Symbols)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	a, err := EncodeImage(sampleProgram())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	b, err := EncodeImage(sampleProgram())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same program produced different image bytes")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeImage([]byte("not cbor at all")); err == nil {
		t.Error("expected error for non-CBOR input")
	}
}

func TestDecodeRejectsWrongMagic(t *testing.T) {
	data, err := cborEncMode.Marshal(&image{
		Magic:   "ELF",
		Version: imageVersion,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := DecodeImage(data); err == nil {
		t.Error("expected error for wrong magic")
	}
}

func TestDecodeRejectsFutureVersion(t *testing.T) {
	data, err := cborEncMode.Marshal(&image{
		Magic:   imageMagic,
		Version: imageVersion + 1,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	_, err = DecodeImage(data)
	if err == nil || !strings.Contains(err.Error(), "version") {
		t.Errorf("got %v, want version error", err)
	}
}

func TestDecodeRejectsTruncatedImage(t *testing.T) {
	data, err := EncodeImage(sampleProgram())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeImage(data[:len(data)/2]); err == nil {
		t.Error("expected error for truncated image")
	}
}

// Guard against accidental field renames breaking existing images.
func TestImageFieldNamesStable(t *testing.T) {
	data, err := EncodeImage(sampleProgram())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var raw map[string]cbor.RawMessage
	if err := cbor.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal as map: %v", err)
	}
	for _, key := range []string{"magic", "version", "code", "consts", "symbols"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("image missing %q field", key)
		}
	}
}
