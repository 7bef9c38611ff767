package vsix

import (
	"archive/zip"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed vsixmanifest.tmpl
var vsixManifestTmpl string

//go:embed contenttypes.xml
var contentTypesXML string

// assetAllowlist is the fixed set of extension files copied into the
// archive under extension/. Files that do not exist are skipped
// rather than failing the build.
var assetAllowlist = []string{
	"package.json",
	"README.md",
	"language-configuration.json",
	".vscodeignore",
	"syntaxes/flux.tmLanguage.json",
}

// Build assembles <dist>/<name>-<version>.vsix from the extension
// rooted at root and returns the archive path. The dist directory is
// created if needed; an existing archive is overwritten.
func Build(root, dist string) (string, error) {
	m, err := ReadManifest(root)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dist, 0o755); err != nil {
		return "", fmt.Errorf("creating dist directory: %w", err)
	}

	archivePath := filepath.Join(dist, m.ArchiveName())
	f, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("creating archive: %w", err)
	}

	zw := zip.NewWriter(f)
	if err := writeEntries(zw, m, root); err != nil {
		zw.Close()
		f.Close()
		return "", err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return "", fmt.Errorf("finalizing archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing archive: %w", err)
	}

	return archivePath, nil
}

func writeEntries(zw *zip.Writer, m *Manifest, root string) error {
	manifest, err := renderVsixManifest(m)
	if err != nil {
		return err
	}
	if err := writeEntry(zw, "extension.vsixmanifest", manifest); err != nil {
		return err
	}
	if err := writeEntry(zw, "[Content_Types].xml", []byte(contentTypesXML)); err != nil {
		return err
	}

	for _, rel := range assetAllowlist {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}
		if err := writeEntry(zw, path.Join("extension", rel), data); err != nil {
			return err
		}
	}

	return nil
}

// writeEntry stores one archive member. zip.Writer.Create registers
// members with deflate compression.
func writeEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("adding %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// renderVsixManifest fills the embedded vsixmanifest template with
// XML-escaped metadata from package.json.
func renderVsixManifest(m *Manifest) ([]byte, error) {
	tmpl, err := template.New("vsixmanifest").Parse(vsixManifestTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing vsixmanifest template: %w", err)
	}

	view := struct {
		ID          string
		Version     string
		Publisher   string
		DisplayName string
		Description string
		Tags        string
		Categories  string
		Engine      string
	}{
		ID:          xmlEscape(m.ExtensionID()),
		Version:     xmlEscape(m.Version),
		Publisher:   xmlEscape(m.Publisher),
		DisplayName: xmlEscape(m.displayName()),
		Description: xmlEscape(m.Description),
		Tags:        xmlEscape(strings.Join(m.Keywords, ",")),
		Categories:  xmlEscape(strings.Join(m.Categories, ",")),
		Engine:      xmlEscape(m.engine()),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("rendering vsixmanifest: %w", err)
	}
	return buf.Bytes(), nil
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
