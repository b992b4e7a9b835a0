package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/textlens/internal/testutil"
)

func TestCheckExtension(t *testing.T) {
	for _, name := range []string{"a.txt", "B.TXT", "data.csv", "notes.Md", "/tmp/x/y.md"} {
		assert.NoError(t, CheckExtension(name), name)
	}
	for _, name := range []string{"a.pdf", "noext", "a.txt.exe", "archive.tar.gz"} {
		assert.ErrorIs(t, CheckExtension(name), ErrUnsupportedExtension, name)
	}
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("README.MD"))
	assert.False(t, IsMarkdown("notes.txt"))
}

func TestDecode(t *testing.T) {
	gen := testutil.TestDataGenerator{}

	got, err := Decode("a.txt", []byte("canción"))
	require.NoError(t, err)
	assert.Equal(t, "canción", got)

	got, err = Decode("bom.txt", gen.BOMText("Hola"))
	require.NoError(t, err)
	assert.Equal(t, "Hola", got)

	_, err = Decode("latin1.txt", []byte{'c', 'a', 'n', 'c', 'i', 0xF3, 'n'})
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "latin1.txt", derr.Name)
	assert.Equal(t, 5, derr.Offset)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "review.txt")
	testutil.CreateTestFile(t, path, []byte("Me encanta este producto."))
	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Me encanta este producto.", got)

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	pdf := filepath.Join(dir, "review.pdf")
	testutil.CreateTestFile(t, pdf, []byte("x"))
	_, err = ReadFile(pdf)
	assert.ErrorIs(t, err, ErrUnsupportedExtension)
}

func TestReadUpload(t *testing.T) {
	got, err := ReadUpload("a.csv", strings.NewReader("uno,dos"), 0)
	require.NoError(t, err)
	assert.Equal(t, "uno,dos", got)

	_, err = ReadUpload("a.txt", strings.NewReader("0123456789"), 5)
	assert.ErrorIs(t, err, ErrTooLarge)

	got, err = ReadUpload("a.txt", strings.NewReader("01234"), 5)
	require.NoError(t, err)
	assert.Equal(t, "01234", got)

	_, err = ReadUpload("a.exe", strings.NewReader("x"), 0)
	assert.ErrorIs(t, err, ErrUnsupportedExtension)

	_, err = ReadUpload("a.txt", strings.NewReader("\xff\xfe"), 0)
	var derr *DecodeError
	assert.True(t, errors.As(err, &derr))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short", 10))
	assert.Equal(t, "exactly", Preview("exactly", 7))
	assert.Equal(t, "abc...", Preview("abcdef", 3))
	assert.Equal(t, "ñañ...", Preview("ñañaña", 3))

	long := strings.Repeat("a", PreviewLength+1)
	assert.Equal(t, PreviewLength+3, len(Preview(long, PreviewLength)))
}

func TestStripMarkdown(t *testing.T) {
	md := "# Reseña\n\nMe **encanta** este [producto](https://example.com/p).\n\n* Es muy bueno\n* Es barato & útil\n"
	got := StripMarkdown(md)

	assert.Equal(t, "Reseña\nMe encanta este producto.\nEs muy bueno\nEs barato & útil", got)
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, "https://")
}
