package manuals_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/undivisible/gizzmoelectronics.com/manuals"
)

func writeManual(t *testing.T, dir, category, product string, files ...string) {
	t.Helper()
	productDir := filepath.Join(dir, category, product)
	if err := os.MkdirAll(productDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(productDir, f), []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestList_MissingDirectoryYieldsEmpty(t *testing.T) {
	c := manuals.NewCatalog(filepath.Join(t.TempDir(), "does-not-exist"), zap.NewNop())

	assert.Empty(t, c.List())
}

func TestList_FindsAndFormatsManuals(t *testing.T) {
	dir := t.TempDir()
	writeManual(t, dir, "wireless_chargers", "turbo_pad", "quickstart.pdf", "instructions.pdf")
	writeManual(t, dir, "audio", "bass_buds", "instructions.pdf")

	c := manuals.NewCatalog(dir, zap.NewNop())
	list := c.List()

	assert.Len(t, list, 2)

	// sorted by title
	assert.Equal(t, "Bass Buds", list[0].Title)
	assert.Equal(t, "Turbo Pad", list[1].Title)

	assert.Equal(t, "Audio", list[0].Category)
	assert.Equal(t, "audio-bass_buds", list[0].ID)
	assert.Empty(t, list[0].Files.Quickstart)
	assert.Equal(t, "/manuals/audio/bass_buds/instructions.pdf", list[0].Files.Instructions)

	assert.Equal(t, "Wireless Chargers", list[1].Category)
	assert.Equal(t, "/manuals/wireless_chargers/turbo_pad/quickstart.pdf", list[1].Files.Quickstart)
	assert.Equal(t, "/manuals/wireless_chargers/turbo_pad/instructions.pdf", list[1].Files.Instructions)
}

func TestList_SkipsProductsWithoutPDFs(t *testing.T) {
	dir := t.TempDir()
	writeManual(t, dir, "audio", "bass_buds", "readme.txt")

	c := manuals.NewCatalog(dir, zap.NewNop())

	assert.Empty(t, c.List())
}
