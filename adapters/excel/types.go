package excel

import (
	"path/filepath"
	"strings"
)

// FileType is the tabular format of an upload
type FileType string

const (
	FileTypeCSV  FileType = "csv"
	FileTypeXLSX FileType = "xlsx"
)

// DetectFileType picks the format from the file extension
func DetectFileType(name string) (FileType, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FileTypeCSV, true
	case ".xlsx", ".xlsm":
		return FileTypeXLSX, true
	default:
		return "", false
	}
}
