package util

import "fmt"

// SourceFile represents a source file handle used to resolve spans
type SourceFile struct {
	Content string
	URL     string
}

// NewSourceFile creates a new SourceFile
func NewSourceFile(content, url string) *SourceFile {
	return &SourceFile{
		Content: content,
		URL:     url,
	}
}

// Location resolves a byte offset into a 1-based line and column
func (f *SourceFile) Location(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Content) {
		offset = len(f.Content)
	}
	line, col = 1, 1
	for i := 0; i < offset; i++ {
		if f.Content[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Describe renders an offset as "url@line:col"
func (f *SourceFile) Describe(offset int) string {
	line, col := f.Location(offset)
	return fmt.Sprintf("%s@%d:%d", f.URL, line, col)
}

// SourceSpan represents a contiguous region of source text
type SourceSpan struct {
	Offset int
	Length int
}

// NewSourceSpan creates a new SourceSpan
func NewSourceSpan(offset, length int) SourceSpan {
	return SourceSpan{
		Offset: offset,
		Length: length,
	}
}

// End returns the offset one past the last character of the span
func (s SourceSpan) End() int {
	return s.Offset + s.Length
}

// Text returns the source text covered by the span
func (s SourceSpan) Text(file *SourceFile) string {
	if file == nil || s.Offset < 0 || s.End() > len(file.Content) {
		return ""
	}
	return file.Content[s.Offset:s.End()]
}
