// Package vsix assembles a VS Code extension's static assets into a
// distributable .vsix archive.
//
// A .vsix is a ZIP file carrying a generated XML package manifest
// (extension.vsixmanifest), a [Content_Types].xml declaration, and
// the extension sources under an extension/ prefix. The extension's
// identity and metadata come from its package.json.
package vsix
