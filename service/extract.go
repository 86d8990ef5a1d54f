package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dslipak/pdf"
)

// SourceType labels for uploads
const (
	SourceText = "text"
	SourcePDF  = "pdf"
	SourceDocx = "docx"
	SourceTxt  = "txt"
)

// DetectSourceType maps a filename to its extraction strategy
func DetectSourceType(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return SourcePDF, nil
	case ".docx":
		return SourceDocx, nil
	case ".txt", ".text", ".md":
		return SourceTxt, nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

// ExtractText pulls plain text out of an uploaded file
func ExtractText(data []byte, sourceType string) (string, error) {
	switch sourceType {
	case SourcePDF:
		return extractPDF(data)
	case SourceDocx:
		return extractDocx(data)
	case SourceTxt, SourceText:
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported source type: %s", sourceType)
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return b.String(), nil
}

// extractDocx reads word/document.xml from the docx archive and collects the
// text runs, inserting a newline at each paragraph end.
func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx archive: %w", err)
	}

	var docXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docXML, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document.xml: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("invalid docx: word/document.xml not found")
	}
	defer docXML.Close()

	var b strings.Builder
	decoder := xml.NewDecoder(docXML)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
