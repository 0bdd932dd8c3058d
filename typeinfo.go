package magickit

import "strings"

// ============================================================================
// Category
// ============================================================================

// Category is a coarse file-category bucket derived from a libmagic
// description string.
type Category string

const (
	CategoryWord            Category = "word"
	CategoryExcel           Category = "excel"
	CategoryPowerPoint      Category = "ppt"
	CategoryPDF             Category = "pdf"
	CategoryRTF             Category = "rtf"
	CategoryHTML            Category = "html"
	CategoryScript          Category = "script"
	CategoryText            Category = "text"
	CategoryLinuxExecutable Category = "elf"
	CategoryPE              Category = "pe"
	Category7Zip            Category = "7zip"
	CategoryRAR             Category = "rar"
	CategoryTar             Category = "tar"
	CategoryZip             Category = "zip"
	CategoryOther           Category = "other"
)

// Categories lists every category in classification order.
// Category() evaluates the predicates in exactly this order and the
// first match wins, so narrow buckets (Word, Excel) must come before
// the broad ones (Text, Zip) that their descriptions would also match.
var Categories = []Category{
	CategoryWord,
	CategoryExcel,
	CategoryPowerPoint,
	CategoryPDF,
	CategoryRTF,
	CategoryHTML,
	CategoryScript,
	CategoryText,
	CategoryLinuxExecutable,
	CategoryPE,
	Category7Zip,
	CategoryRAR,
	CategoryTar,
	CategoryZip,
	CategoryOther,
}

// ============================================================================
// TypeInfo
// ============================================================================

// TypeInfo holds a libmagic description string and answers category
// predicates by matching known substrings of it.
//
// The match strings cover the descriptions libmagic produces for the
// same logical type across platforms. Office files are the messy case:
// a modern .docx yields "Microsoft Word 2007+", while a legacy .doc is
// reported as a "Composite Document File V2 Document" whose long
// property dump names the creating application ("Microsoft Office
// Word" on Windows, "Microsoft Macintosh Word" on macOS). The legacy
// spreadsheet and presentation formats follow the same pattern.
type TypeInfo struct {
	// Description is the human-readable result of a libmagic query
	// made without MIME flags.
	Description string

	// MIME optionally holds the MIME type from a separate query made
	// with FlagMIMEType. Empty when only the description was queried.
	MIME string
}

// IsWord reports whether the description identifies a Microsoft Word
// document (.doc or .docx, any platform).
func (t TypeInfo) IsWord() bool {
	return strings.Contains(t.Description, "Microsoft Office Word") ||
		t.Description == "Microsoft Word document (*.docx)" ||
		strings.Contains(t.Description, "Microsoft Macintosh Word") ||
		t.Description == "Microsoft Word 2007+"
}

// IsExcel reports whether the description identifies a Microsoft Excel
// spreadsheet (.xls or .xlsx, any platform).
func (t TypeInfo) IsExcel() bool {
	return strings.Contains(t.Description, "Microsoft Excel") ||
		t.Description == "Microsoft Excel document (*.xlsx)" ||
		strings.Contains(t.Description, "Microsoft Macintosh Excel") ||
		t.Description == "Microsoft Excel 2007+"
}

// IsPowerPoint reports whether the description identifies a Microsoft
// PowerPoint presentation (.ppt or .pptx, any platform).
func (t TypeInfo) IsPowerPoint() bool {
	return strings.Contains(t.Description, "Microsoft Office PowerPoint") ||
		t.Description == "Microsoft PowerPoint document (*.pptx)" ||
		strings.Contains(t.Description, "Microsoft Macintosh PowerPoint") ||
		t.Description == "Microsoft PowerPoint 2007+"
}

// IsPDF reports whether the description identifies a PDF document.
func (t TypeInfo) IsPDF() bool {
	return strings.HasPrefix(t.Description, "PDF document")
}

// IsRTF reports whether the description identifies a Rich Text Format
// document.
func (t TypeInfo) IsRTF() bool {
	return strings.HasPrefix(t.Description, "Rich Text Format")
}

// IsHTML reports whether the description identifies an HTML document.
func (t TypeInfo) IsHTML() bool {
	return strings.HasPrefix(t.Description, "HTML document text")
}

// IsScript reports whether the description identifies a script of any
// kind (shell, Python, Perl, ...).
func (t TypeInfo) IsScript() bool {
	return strings.Contains(t.Description, "script")
}

// IsText reports whether the description identifies any textual
// content. Broader than IsHTML and IsScript; check those first when
// the distinction matters.
func (t TypeInfo) IsText() bool {
	return strings.Contains(t.Description, "text")
}

// IsLinuxExecutable reports whether the description identifies an ELF
// or COFF binary.
func (t TypeInfo) IsLinuxExecutable() bool {
	return strings.Contains(t.Description, "ELF") ||
		strings.Contains(t.Description, "COFF")
}

// IsPE reports whether the description identifies a Windows
// executable: PE/PE32 images plus the self-extracting and boot-sector
// shapes Windows binaries commonly ship in.
func (t TypeInfo) IsPE() bool {
	return strings.Contains(t.Description, " PE ") ||
		strings.Contains(t.Description, " PE32") ||
		strings.HasPrefix(t.Description, "PE ") ||
		strings.HasPrefix(t.Description, "PE32") ||
		strings.HasPrefix(t.Description, "MS-DOS executable") ||
		strings.HasPrefix(t.Description, "Self-extracting PKZIP archive") ||
		strings.HasPrefix(t.Description, "Microsoft Windows Autorun file") ||
		strings.HasPrefix(t.Description, "x86 boot sector")
}

// Is7Zip reports whether the description identifies a 7-zip archive.
func (t TypeInfo) Is7Zip() bool {
	return strings.HasPrefix(t.Description, "7-zip archive data")
}

// IsRAR reports whether the description identifies a RAR archive.
func (t TypeInfo) IsRAR() bool {
	return strings.HasPrefix(t.Description, "RAR archive data")
}

// IsTar reports whether the description identifies a plain tar
// archive. POSIX tar is bucketed with the other archive formats by
// IsZip instead.
func (t TypeInfo) IsTar() bool {
	return t.Description == "tar archive"
}

// IsZip reports whether the description identifies any of the
// remaining archive/compression formats (zip, gzip, bzip2, xz, cab,
// xar, POSIX tar).
func (t TypeInfo) IsZip() bool {
	return strings.HasPrefix(t.Description, "application/zip") ||
		strings.HasPrefix(t.Description, "Zip archive data") ||
		strings.HasPrefix(t.Description, "gzip compressed data") ||
		strings.HasPrefix(t.Description, "Microsoft Cabinet archive") ||
		strings.HasPrefix(t.Description, "bzip2 compressed data") ||
		strings.HasPrefix(t.Description, "POSIX tar archive") ||
		t.Description == "InstallShield CAB" ||
		strings.HasPrefix(t.Description, "xar archive") ||
		t.Description == "xz compressed data" ||
		strings.HasPrefix(t.Description, "Zip64 archive data")
}

// Category buckets the description into a single Category.
// Predicates are evaluated in the order of Categories; the first match
// wins, everything else falls through to CategoryOther.
func (t TypeInfo) Category() Category {
	switch {
	case t.IsWord():
		return CategoryWord
	case t.IsExcel():
		return CategoryExcel
	case t.IsPowerPoint():
		return CategoryPowerPoint
	case t.IsPDF():
		return CategoryPDF
	case t.IsRTF():
		return CategoryRTF
	case t.IsHTML():
		return CategoryHTML
	case t.IsScript():
		return CategoryScript
	case t.IsText():
		return CategoryText
	case t.IsLinuxExecutable():
		return CategoryLinuxExecutable
	case t.IsPE():
		return CategoryPE
	case t.Is7Zip():
		return Category7Zip
	case t.IsRAR():
		return CategoryRAR
	case t.IsTar():
		return CategoryTar
	case t.IsZip():
		return CategoryZip
	default:
		return CategoryOther
	}
}

// String returns the description.
func (t TypeInfo) String() string {
	return t.Description
}
