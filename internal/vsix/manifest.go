package vsix

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrBadManifest marks package.json validation failures.
var ErrBadManifest = errors.New("invalid package manifest")

// Manifest is the subset of a VS Code extension's package.json needed
// to assemble a .vsix archive.
type Manifest struct {
	Publisher   string   `json:"publisher"`
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Keywords    []string `json:"keywords"`
	Engines     struct {
		VSCode string `json:"vscode"`
	} `json:"engines"`
}

// ReadManifest loads and validates package.json from the extension
// root. Publisher, name and version are required; everything else is
// optional and defaulted at render time.
func ReadManifest(root string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: parsing package.json: %v", ErrBadManifest, err)
	}
	if m.Publisher == "" || m.Name == "" || m.Version == "" {
		return nil, fmt.Errorf("%w: package.json must declare publisher, name and version", ErrBadManifest)
	}

	return &m, nil
}

// ExtensionID is the marketplace identity, publisher.name.
func (m *Manifest) ExtensionID() string {
	return m.Publisher + "." + m.Name
}

// ArchiveName is the distributable file name, name-version.vsix.
func (m *Manifest) ArchiveName() string {
	return fmt.Sprintf("%s-%s.vsix", m.Name, m.Version)
}

func (m *Manifest) displayName() string {
	if m.DisplayName == "" {
		return m.Name
	}
	return m.DisplayName
}

func (m *Manifest) engine() string {
	if m.Engines.VSCode == "" {
		return "*"
	}
	return m.Engines.VSCode
}
