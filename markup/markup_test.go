package markup_test

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/TsubasaBE/go-xlsfmt/markup"
)

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func TestWriter(t *testing.T) {
	var w markup.Writer
	w.Start("numFmts", []xml.Attr{attr("count", "1")}, false)
	w.Start("numFmt", []xml.Attr{attr("numFmtId", "176"), attr("formatCode", `ggge"年"m"月"d"日"`)}, true)
	w.Start("t", nil, false)
	w.Text("a<b & c")
	if err := w.End("t"); err != nil {
		t.Fatalf("End(t): %v", err)
	}
	if err := w.End("numFmts"); err != nil {
		t.Fatalf("End(numFmts): %v", err)
	}

	want := `<numFmts count="1"><numFmt numFmtId="176" formatCode="ggge&#34;年&#34;m&#34;月&#34;d&#34;日&#34;"/><t>a&lt;b &amp; c</t></numFmts>`
	if got := string(w.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}

	// The output must be well-formed and carry the attribute through.
	var doc struct {
		NumFmt struct {
			Code string `xml:"formatCode,attr"`
		} `xml:"numFmt"`
	}
	if err := xml.Unmarshal(w.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.NumFmt.Code != `ggge"年"m"月"d"日"` {
		t.Errorf("formatCode = %q", doc.NumFmt.Code)
	}
}

func TestWriterEndMismatch(t *testing.T) {
	var w markup.Writer
	if err := w.End("a"); err == nil {
		t.Error("End with nothing open: expected error, got nil")
	}
	w.Start("a", nil, false)
	if err := w.End("b"); err == nil {
		t.Error("End(b) inside <a>: expected error, got nil")
	}
	if err := w.WriteFile(t.TempDir(), "x.xml"); err == nil {
		t.Error("WriteFile with open element: expected error, got nil")
	}
}

func TestWriteFile(t *testing.T) {
	root := t.TempDir()
	var w markup.Writer
	w.Start("styleSheet", nil, true)
	if err := w.WriteFile(root, "xl/styles.xml"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(root, "xl", "styles.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<styleSheet/>" {
		t.Errorf("file = %q, want %q", got, "<styleSheet/>")
	}

	if err := markup.WriteStatic(root, "_rels/.rels", "<Relationships/>"); err != nil {
		t.Fatalf("WriteStatic: %v", err)
	}
	got, err = os.ReadFile(filepath.Join(root, "_rels", ".rels"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<Relationships/>" {
		t.Errorf("static file = %q, want %q", got, "<Relationships/>")
	}
}

func TestUnescapeReferences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`&quot;年&quot;`, `"年"`},
		{"a &lt; b &gt; c", "a < b > c"},
		{"&apos;x&apos; &amp; y", "'x' & y"},
		{"&amp;lt;", "&lt;"},
		{"plain", "plain"},
	}
	for _, tc := range tests {
		if got := markup.UnescapeReferences(tc.in); got != tc.want {
			t.Errorf("UnescapeReferences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAttr(t *testing.T) {
	attrs := []xml.Attr{attr("numFmtId", "14"), attr("formatCode", "yyyy/m/d")}
	if v, ok := markup.Attr(attrs, "formatCode"); !ok || v != "yyyy/m/d" {
		t.Errorf("Attr(formatCode) = (%q, %v), want (%q, true)", v, ok, "yyyy/m/d")
	}
	if _, ok := markup.Attr(attrs, "missing"); ok {
		t.Error("Attr(missing) reported found")
	}
}
