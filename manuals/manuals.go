// Package manuals scans a static directory tree for downloadable product
// manuals. The layout is <dir>/<category>/<product>/ with quickstart.pdf
// and/or instructions.pdf inside.
package manuals

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

type ManualFiles struct {
	Quickstart   string `json:"quickstart,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type Manual struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Category string      `json:"category"`
	Files    ManualFiles `json:"files"`
}

// Catalog lists manuals from a directory on each call. Nothing is cached;
// dropping a PDF into the tree makes it appear on the next request.
type Catalog struct {
	dir    string
	logger *zap.Logger
}

func NewCatalog(dir string, logger *zap.Logger) *Catalog {
	return &Catalog{
		dir:    dir,
		logger: logger,
	}
}

// List returns all manuals sorted by title. A missing or unreadable directory
// yields an empty list, not an error.
func (c *Catalog) List() []Manual {
	categories, err := os.ReadDir(c.dir)
	if err != nil {
		c.logger.Warn("Manuals directory not readable", zap.String("dir", c.dir), zap.Error(err))
		return []Manual{}
	}

	manuals := []Manual{}
	for _, category := range categories {
		if !category.IsDir() {
			continue
		}

		products, err := os.ReadDir(filepath.Join(c.dir, category.Name()))
		if err != nil {
			continue
		}

		for _, product := range products {
			if !product.IsDir() {
				continue
			}

			files, err := os.ReadDir(filepath.Join(c.dir, category.Name(), product.Name()))
			if err != nil {
				continue
			}

			hasQuickstart := false
			hasInstructions := false
			for _, f := range files {
				switch f.Name() {
				case "quickstart.pdf":
					hasQuickstart = true
				case "instructions.pdf":
					hasInstructions = true
				}
			}
			if !hasQuickstart && !hasInstructions {
				continue
			}

			m := Manual{
				ID:       category.Name() + "-" + product.Name(),
				Title:    formatName(product.Name()),
				Category: formatName(category.Name()),
			}
			if hasQuickstart {
				m.Files.Quickstart = "/manuals/" + category.Name() + "/" + product.Name() + "/quickstart.pdf"
			}
			if hasInstructions {
				m.Files.Instructions = "/manuals/" + category.Name() + "/" + product.Name() + "/instructions.pdf"
			}
			manuals = append(manuals, m)
		}
	}

	sort.Slice(manuals, func(i, j int) bool { return manuals[i].Title < manuals[j].Title })
	return manuals
}

// formatName turns a directory name like "wireless_chargers" into
// "Wireless Chargers".
func formatName(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
