package adapters

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const specField = "packageManager"

// defaultIndent is used when a manifest has to be created from scratch
// and there is no existing file to imitate.
const defaultIndent = "  "

// ManifestEditorAdapter performs surgical edits of the packageManager
// field. The rest of the file keeps its exact bytes: key order,
// indentation, line endings, and the presence or absence of a trailing
// newline all survive the edit.
type ManifestEditorAdapter struct{}

func NewManifestEditorAdapter() ManifestEditorAdapter {
	return ManifestEditorAdapter{}
}

// ReadSpec returns the manifest's packageManager value. A missing file,
// a missing field, and a non-string field all read as "": the caller
// treats every one of those as "nothing was pinned before".
func (a ManifestEditorAdapter) ReadSpec(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read %s", path)).
			WithCause(err)
	}
	value := gjson.GetBytes(data, specField)
	if !value.Exists() || value.Type != gjson.String {
		return "", nil
	}
	return value.String(), nil
}

// SetSpec pins spec as the packageManager field of the manifest at
// path and returns the previous value. An existing field is replaced in
// place; a new field is appended to the root object following the
// file's own indentation; a missing file becomes a fresh single-field
// manifest.
func (a ManifestEditorAdapter) SetSpec(path string, spec string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		data = nil
	} else if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read %s", path)).
			WithCause(err)
	}

	previous := ""
	if value := gjson.GetBytes(data, specField); value.Exists() && value.Type == gjson.String {
		previous = value.String()
	}

	updated, err := patchSpecField(data, path, spec)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, updated, 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write %s", path)).
			WithCause(err)
	}
	return previous, nil
}

func patchSpecField(data []byte, path string, spec string) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return freshManifest(spec), nil
	}
	trimmed := bytes.TrimSpace(data)
	if trimmed[0] != '{' || !gjson.ValidBytes(data) {
		return nil, errInvalidManifest(path, nil)
	}

	if gjson.GetBytes(data, specField).Exists() {
		updated, err := sjson.SetBytes(data, specField, spec)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to update %s", path)).
				WithCause(err)
		}
		return normalizeLineEndings(data, updated), nil
	}

	updated, err := insertSpecField(data, spec)
	if err != nil {
		return nil, errInvalidManifest(path, err)
	}
	return normalizeLineEndings(data, updated), nil
}

func freshManifest(spec string) []byte {
	encoded, _ := json.Marshal(spec)
	return []byte(fmt.Sprintf("{\n%s%q: %s\n}\n", defaultIndent, specField, encoded))
}

// insertSpecField appends the field at the end of the root object, in
// the same position a JSON re-serialization would put a newly added
// key. Multi-line files get the field on its own line with the file's
// indentation; single-line files stay single-line.
func insertSpecField(data []byte, spec string) ([]byte, error) {
	opening := bytes.IndexByte(data, '{')
	closing := bytes.LastIndexByte(data, '}')
	if opening == -1 || closing == -1 || closing < opening {
		return nil, fmt.Errorf("no root object")
	}
	encoded, _ := json.Marshal(spec)
	multiline := bytes.ContainsRune(data, '\n')
	empty := len(bytes.TrimSpace(data[opening+1:closing])) == 0

	var field bytes.Buffer
	var insertAt int
	if empty {
		if multiline {
			field.WriteString("\n")
			field.WriteString(detectIndent(data))
		}
		insertAt = opening + 1
	} else {
		last := lastContentByte(data, closing)
		field.WriteString(",")
		if multiline {
			field.WriteString("\n")
			field.WriteString(detectIndent(data))
		}
		insertAt = last + 1
	}
	if multiline {
		fmt.Fprintf(&field, "%q: %s\n", specField, encoded)
	} else {
		fmt.Fprintf(&field, "%q:%s", specField, encoded)
	}

	var out bytes.Buffer
	out.Write(data[:insertAt])
	out.Write(field.Bytes())
	out.Write(data[closing:])
	return out.Bytes(), nil
}

// lastContentByte returns the index of the last non-whitespace byte
// before limit.
func lastContentByte(data []byte, limit int) int {
	for i := limit - 1; i >= 0; i-- {
		switch data[i] {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return i
	}
	return 0
}

var indentPattern = regexp.MustCompile(`(?m)^([ \t]+)\S`)

// detectIndent returns the indentation of the first indented line, or
// the default when the file has none.
func detectIndent(data []byte) string {
	match := indentPattern.FindSubmatch(data)
	if match == nil {
		return defaultIndent
	}
	return string(match[1])
}

// normalizeLineEndings rewrites the updated content to the dominant
// line ending of the original file, so an edit never introduces a bare
// LF into a CRLF manifest.
func normalizeLineEndings(original []byte, updated []byte) []byte {
	if !usesCRLF(original) {
		return updated
	}
	normalized := bytes.ReplaceAll(updated, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(normalized, []byte("\n"), []byte("\r\n"))
}

func usesCRLF(data []byte) bool {
	crlf := bytes.Count(data, []byte("\r\n"))
	lf := bytes.Count(data, []byte("\n")) - crlf
	return crlf > lf
}
