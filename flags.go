package magickit

import "strings"

// Flag is a bitmask controlling how libmagic inspects content.
// Values mirror the MAGIC_* constants from <magic.h>.
type Flag int

const (
	// FlagNone requests the default behavior: a human-readable
	// description of the file contents.
	FlagNone Flag = 0x000000

	// FlagDebug turns on libmagic debugging output (stderr).
	FlagDebug Flag = 0x000001

	// FlagSymlink follows symlinks instead of describing them.
	FlagSymlink Flag = 0x000002

	// FlagCompress looks inside compressed files.
	FlagCompress Flag = 0x000004

	// FlagDevices looks at the contents of block/character devices.
	FlagDevices Flag = 0x000008

	// FlagMIMEType returns a MIME type string instead of a description.
	FlagMIMEType Flag = 0x000010

	// FlagContinue returns all matches, not just the first.
	FlagContinue Flag = 0x000020

	// FlagCheck prints warnings to stderr while parsing magic files.
	FlagCheck Flag = 0x000040

	// FlagPreserveATime restores file access times after reading.
	FlagPreserveATime Flag = 0x000080

	// FlagRaw disables translation of unprintable characters.
	FlagRaw Flag = 0x000100

	// FlagError treats OS lookup errors (ENOENT etc.) as real errors
	// instead of folding them into the result text.
	FlagError Flag = 0x000200

	// FlagMIMEEncoding returns the MIME encoding (charset).
	FlagMIMEEncoding Flag = 0x000400

	// FlagMIME returns both MIME type and encoding.
	FlagMIME Flag = FlagMIMEType | FlagMIMEEncoding

	// FlagNoCheckCompress skips checking for compressed files.
	FlagNoCheckCompress Flag = 0x001000

	// FlagNoCheckTar skips checking for tar files.
	FlagNoCheckTar Flag = 0x002000

	// FlagNoCheckSoft skips consulting the magic database entries.
	FlagNoCheckSoft Flag = 0x004000

	// FlagNoCheckAppType skips the application type check.
	FlagNoCheckAppType Flag = 0x008000

	// FlagNoCheckELF skips ELF detail extraction.
	FlagNoCheckELF Flag = 0x010000

	// FlagNoCheckText skips checking for text files.
	FlagNoCheckText Flag = 0x020000

	// FlagNoCheckTroff skips the ascii/troff check.
	FlagNoCheckTroff Flag = 0x040000

	// FlagNoCheckFortran skips the ascii/fortran check.
	FlagNoCheckFortran Flag = 0x080000

	// FlagNoCheckTokens skips the ascii/tokens check.
	FlagNoCheckTokens Flag = 0x100000
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagDebug, "debug"},
	{FlagSymlink, "symlink"},
	{FlagCompress, "compress"},
	{FlagDevices, "devices"},
	{FlagMIMEType, "mime-type"},
	{FlagContinue, "continue"},
	{FlagCheck, "check"},
	{FlagPreserveATime, "preserve-atime"},
	{FlagRaw, "raw"},
	{FlagError, "error"},
	{FlagMIMEEncoding, "mime-encoding"},
	{FlagNoCheckCompress, "no-check-compress"},
	{FlagNoCheckTar, "no-check-tar"},
	{FlagNoCheckSoft, "no-check-soft"},
	{FlagNoCheckAppType, "no-check-apptype"},
	{FlagNoCheckELF, "no-check-elf"},
	{FlagNoCheckText, "no-check-text"},
	{FlagNoCheckTroff, "no-check-troff"},
	{FlagNoCheckFortran, "no-check-fortran"},
	{FlagNoCheckTokens, "no-check-tokens"},
}

// String returns a comma-separated list of the set flags,
// or "none" for the zero value.
func (f Flag) String() string {
	if f == FlagNone {
		return "none"
	}

	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag == fn.flag {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// Has reports whether all bits of other are set in f.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}
