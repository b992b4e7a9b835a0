// Package input turns files and uploads into analysable text. It enforces the
// extension allow-list and decodes content as UTF-8.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// DefaultUploadLimit caps the size of a single uploaded file.
const DefaultUploadLimit = 5 << 20

// PreviewLength is the number of runes shown before truncating.
const PreviewLength = 1000

// AllowedExtensions lists the accepted file extensions, lower-case.
var AllowedExtensions = []string{".txt", ".csv", ".md"}

var (
	ErrUnsupportedExtension = errors.New("unsupported file type")
	ErrTooLarge             = errors.New("file exceeds upload limit")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeError reports content that is not valid UTF-8.
type DecodeError struct {
	Name   string
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s is not valid UTF-8 text (invalid byte at offset %d)", e.Name, e.Offset)
}

// CheckExtension accepts names ending in one of AllowedExtensions, ignoring
// case.
func CheckExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w %q: allowed are %s", ErrUnsupportedExtension, ext, strings.Join(AllowedExtensions, ", "))
}

// IsMarkdown reports whether name carries a markdown extension.
func IsMarkdown(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}

// Decode returns data as a string. A leading byte order mark is dropped.
func Decode(name string, data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", &DecodeError{Name: name, Offset: invalidOffset(data)}
	}
	return string(data), nil
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(data)
}

// ReadFile checks the extension of path and decodes its content.
func ReadFile(path string) (string, error) {
	if err := CheckExtension(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(filepath.Base(path), data)
}

// ReadUpload reads at most limit bytes from r. A non-positive limit selects
// DefaultUploadLimit.
func ReadUpload(name string, r io.Reader, limit int64) (string, error) {
	if err := CheckExtension(name); err != nil {
		return "", err
	}
	if limit <= 0 {
		limit = DefaultUploadLimit
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload %s: %w", name, err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w (%d bytes)", ErrTooLarge, limit)
	}
	return Decode(name, data)
}

// Preview returns the first n runes of text, followed by "..." when text was
// cut.
func Preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "..."
}
