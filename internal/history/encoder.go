package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Encode writes the record to the provided writer as TOML
func Encode(w io.Writer, rec *Record) error {
	if rec == nil {
		return fmt.Errorf("history: record is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(rec)
}

// EncodeToBytes encodes and returns the result as bytes
func EncodeToBytes(rec *Record) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, rec); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
