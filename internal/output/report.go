package output

import (
	"github.com/rpgo/withdrawal-simulator/internal/domain"
)

// GenerateReport writes report in the requested format to dir and returns the file path.
// The pseudo-format "all" writes the verbose console report, the detailed CSV and the HTML report.
func GenerateReport(report *domain.ProjectionReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range []string{"console", "detailed-csv", "html"} {
			path, err := WriteFormatted(GetFormatterByName(name), report, dir, FileExtension(name))
			if err != nil {
				return files, err
			}
			files = append(files, path)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	path, err := WriteFormatted(f, report, dir, FileExtension(format))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}
