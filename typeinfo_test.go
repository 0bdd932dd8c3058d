package magickit

import "testing"

const (
	winDocDescription = "Composite Document File V2 Document, Little Endian, Os: Windows, Version 5.1, " +
		"Code page: 936, Title: C++, Template: Normal, Revision Number: 1, " +
		"Name of Creating Application: Microsoft Office Word, Total Editing Time: 02:00, " +
		"Number of Pages: 1, Number of Words: 1210, Number of Characters: 6897, Security: 0"
	macDocDescription = "Composite Document File V2 Document, Little Endian, Os: MacOS, Version 10.3, " +
		"Code page: 10008, Author: Microsoft Office , Template: Normal.dotm, " +
		"Name of Creating Application: Microsoft Macintosh Word, Number of Pages: 1, Security: 0"
	winXlsDescription = "Composite Document File V2 Document, Little Endian, Os: Windows, Version 5.0, " +
		"Code page: 936, Name of Creating Application: Microsoft Excel, Security: 0"
	winPptDescription = "Composite Document File V2 Document, Little Endian, Os: Windows, Version 6.1, " +
		"Code page: 936, Title: PowerPoint , Author: mwz2, Revision Number: 69, " +
		"Name of Creating Application: Microsoft Office PowerPoint, Number of Words: 13734"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        Category
	}{
		// Office documents
		{"docx", "Microsoft Word 2007+", CategoryWord},
		{"doc windows", winDocDescription, CategoryWord},
		{"doc macos", macDocDescription, CategoryWord},
		{"docx mimetype-style", "Microsoft Word document (*.docx)", CategoryWord},
		{"xlsx", "Microsoft Excel 2007+", CategoryExcel},
		{"xls windows", winXlsDescription, CategoryExcel},
		{"pptx", "Microsoft PowerPoint 2007+", CategoryPowerPoint},
		{"ppt windows", winPptDescription, CategoryPowerPoint},

		// Other documents
		{"pdf", "PDF document, version 1.2", CategoryPDF},
		{"rtf", "Rich Text Format data, version 1, ANSI", CategoryRTF},
		{"html", "HTML document text, ASCII text", CategoryHTML},

		// Text
		{"shell script", "POSIX shell script, ASCII text executable", CategoryScript},
		{"python script", "Python script, ASCII text executable", CategoryScript},
		{"ascii text", "ASCII text", CategoryText},
		{"utf8 text", "UTF-8 Unicode text, with very long lines", CategoryText},

		// Executables
		{"elf binary", "ELF 64-bit LSB executable, x86-64, version 1 (SYSV), dynamically linked", CategoryLinuxExecutable},
		{"coff object", "Intel 80386 COFF object file", CategoryLinuxExecutable},
		{"pe32 exe", "PE32 executable (GUI) Intel 80386, for MS Windows", CategoryPE},
		{"pe32+ exe", "PE32+ executable (console) x86-64, for MS Windows", CategoryPE},
		{"msdos exe", "MS-DOS executable", CategoryPE},
		{"self-extracting", "Self-extracting PKZIP archive", CategoryPE},
		{"boot sector", "x86 boot sector, code offset 0x3c", CategoryPE},

		// Archives
		{"7z", "7-zip archive data, version 0.4", Category7Zip},
		{"rar", "RAR archive data, v5", CategoryRAR},
		{"plain tar", "tar archive", CategoryTar},
		{"posix tar", "POSIX tar archive (GNU)", CategoryZip},
		{"zip", "Zip archive data, at least v2.0 to extract", CategoryZip},
		{"zip64", "Zip64 archive data, at least v4.5 to extract", CategoryZip},
		{"gzip", "gzip compressed data, last modified: Thu Feb  2 12:48:00 2012", CategoryZip},
		{"bzip2", "bzip2 compressed data, block size = 900k", CategoryZip},
		{"xz", "xz compressed data", CategoryZip},
		{"cab", "Microsoft Cabinet archive data, 1234 bytes, 1 file", CategoryZip},
		{"installshield cab", "InstallShield CAB", CategoryZip},
		{"xar", "xar archive version 1, SHA-1 checksum", CategoryZip},

		// Fallback
		{"raw data", "data", CategoryOther},
		{"image", "PNG image data, 800 x 600, 8-bit/color RGBA", CategoryOther},
		{"empty description", "", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TypeInfo{Description: tt.description}.Category()
			if got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Narrow categories must win over broad ones: script and HTML
// descriptions both contain "text", so the fixed evaluation order is
// what keeps them out of the plain text bucket.
func TestCategoryOrdering(t *testing.T) {
	script := TypeInfo{Description: "Bourne-Again shell script, ASCII text executable"}
	if !script.IsText() {
		t.Fatal("expected script description to also match IsText")
	}
	if got := script.Category(); got != CategoryScript {
		t.Errorf("Category() = %q, want %q", got, CategoryScript)
	}

	html := TypeInfo{Description: "HTML document text, ASCII text"}
	if !html.IsText() {
		t.Fatal("expected HTML description to also match IsText")
	}
	if got := html.Category(); got != CategoryHTML {
		t.Errorf("Category() = %q, want %q", got, CategoryHTML)
	}
}

func TestPredicates(t *testing.T) {
	word := TypeInfo{Description: "Microsoft Word 2007+"}
	if !word.IsWord() {
		t.Error("IsWord() = false for docx description")
	}
	if word.IsExcel() || word.IsPowerPoint() || word.IsPDF() {
		t.Error("docx description matched an unrelated predicate")
	}

	pdf := TypeInfo{Description: "PDF document, version 1.7 (password protected)"}
	if !pdf.IsPDF() {
		t.Error("IsPDF() = false for PDF description")
	}

	// "tar archive" is exact: the POSIX variant belongs to IsZip.
	posixTar := TypeInfo{Description: "POSIX tar archive (GNU)"}
	if posixTar.IsTar() {
		t.Error("IsTar() = true for POSIX tar, want IsZip bucket")
	}
	if !posixTar.IsZip() {
		t.Error("IsZip() = false for POSIX tar")
	}

	// The "application/zip" prefix is matched even in description mode
	// for handles configured with MIME flags.
	mimeZip := TypeInfo{Description: "application/zip"}
	if !mimeZip.IsZip() {
		t.Error("IsZip() = false for application/zip MIME result")
	}
}

func TestCategoriesOrderMatchesEvaluation(t *testing.T) {
	if len(Categories) != 15 {
		t.Fatalf("Categories has %d entries, want 15", len(Categories))
	}
	if Categories[0] != CategoryWord || Categories[len(Categories)-1] != CategoryOther {
		t.Error("Categories must start with word and end with other")
	}
}

func BenchmarkCategory(b *testing.B) {
	info := TypeInfo{Description: winDocDescription}
	for i := 0; i < b.N; i++ {
		_ = info.Category()
	}
}
