// Package markup writes the small XML parts that make up a spreadsheet
// package: an in-memory element writer, and helpers that place finished parts
// under an unpacked package directory.
package markup

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer buffers an XML document built one event at a time.  The zero value
// is ready to use.
type Writer struct {
	buf  bytes.Buffer
	open []string
}

// Start writes a start tag.  When empty is true the element is closed
// immediately (<name/>) and must not be ended.
func (w *Writer) Start(name string, attrs []xml.Attr, empty bool) {
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	for _, a := range attrs {
		w.buf.WriteByte(' ')
		if a.Name.Space != "" {
			w.buf.WriteString(a.Name.Space)
			w.buf.WriteByte(':')
		}
		w.buf.WriteString(a.Name.Local)
		w.buf.WriteString(`="`)
		xml.EscapeText(&w.buf, []byte(a.Value))
		w.buf.WriteByte('"')
	}
	if empty {
		w.buf.WriteString("/>")
		return
	}
	w.buf.WriteByte('>')
	w.open = append(w.open, name)
}

// End closes the innermost open element, which must be name.
func (w *Writer) End(name string) error {
	n := len(w.open)
	if n == 0 {
		return fmt.Errorf("markup: end %q: no open element", name)
	}
	if w.open[n-1] != name {
		return fmt.Errorf("markup: end %q: innermost open element is %q", name, w.open[n-1])
	}
	w.open = w.open[:n-1]
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteByte('>')
	return nil
}

// Text writes escaped character data.
func (w *Writer) Text(s string) {
	xml.EscapeText(&w.buf, []byte(s))
}

// Bytes returns the document written so far.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// WriteFile stores the document at root/path, creating parent directories.
// Every started element must have been ended.
func (w *Writer) WriteFile(root, path string) error {
	if len(w.open) > 0 {
		return fmt.Errorf("markup: write %q: element %q not closed", path, w.open[len(w.open)-1])
	}
	return writeFile(root, path, w.buf.Bytes())
}

// WriteStatic stores a fixed part, such as a content-types document, at
// root/path.
func WriteStatic(root, path, data string) error {
	return writeFile(root, path, []byte(data))
}

func writeFile(root, path string, data []byte) error {
	target := filepath.Join(root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("markup: write %q: %w", path, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("markup: write %q: %w", path, err)
	}
	return nil
}

var references = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// UnescapeReferences replaces the five predefined XML entity references in s.
// Each reference is replaced once, so "&amp;lt;" becomes "&lt;".
func UnescapeReferences(s string) string {
	return references.Replace(s)
}

// Attr returns the value of the attribute with the given local name.
func Attr(attrs []xml.Attr, local string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}
