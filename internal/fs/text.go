package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	sniffSampleSize        = 4096
	nonPrintablePercentMax = 30
)

var binaryExtensions = map[string]struct{}{
	".7z": {}, ".avi": {}, ".bin": {}, ".bmp": {}, ".bz2": {},
	".class": {}, ".dll": {}, ".dylib": {}, ".exe": {}, ".flac": {},
	".gif": {}, ".gz": {}, ".ico": {}, ".iso": {}, ".jar": {},
	".jpeg": {}, ".jpg": {}, ".mkv": {}, ".mov": {}, ".mp3": {},
	".mp4": {}, ".ogg": {}, ".otf": {}, ".pdf": {}, ".png": {},
	".so": {}, ".tar": {}, ".tgz": {}, ".ttf": {}, ".wasm": {},
	".wav": {}, ".woff": {}, ".woff2": {}, ".xz": {}, ".zip": {},
}

// LooksBinaryByName reports whether the filename alone marks the file as
// binary. A recognized extension is conclusive; content sniffing only
// runs for names not listed here.
func LooksBinaryByName(path string) bool {
	if path == "" {
		return false
	}
	_, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ReadHead returns up to limit bytes from the beginning of path.
func ReadHead(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return io.ReadAll(io.LimitReader(f, limit))
}

// DecodeText attempts to interpret content as text. It honors UTF-8 and
// UTF-16 byte-order marks, falls back to plain UTF-8, and reports ok=false
// for content that sniffs as binary.
func DecodeText(path string, content []byte) (text string, ok bool) {
	if !isText(path, content) {
		return "", false
	}

	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return string(content[3:]), true
	}
	if len(content) >= 2 {
		switch {
		case content[0] == 0xFF && content[1] == 0xFE:
			return decodeUTF16(content, unicode.LittleEndian), true
		case content[0] == 0xFE && content[1] == 0xFF:
			return decodeUTF16(content, unicode.BigEndian), true
		}
	}
	return string(content), true
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}

func isText(path string, content []byte) bool {
	if LooksBinaryByName(path) {
		return false
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}

	if hasUnicodeBOM(sample) {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	printable := 0
	for _, b := range sample {
		if isCommonTextByte(b) {
			printable++
		} else {
			nonPrintable++
		}
	}
	if printable == 0 {
		return false
	}
	return nonPrintable*100/len(sample) < nonPrintablePercentMax
}

func hasUnicodeBOM(sample []byte) bool {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return true
	}
	if len(sample) >= 2 {
		if (sample[0] == 0xFF && sample[1] == 0xFE) || (sample[0] == 0xFE && sample[1] == 0xFF) {
			return true
		}
	}
	return false
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b == 0x1B:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}
