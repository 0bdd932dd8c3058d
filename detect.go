package magickit

import "sync"

// Shared handles for the package-level convenience API, one per flag
// set, created on first use. Mirrors the way file(1) users typically
// want exactly two modes: description and MIME type.
var (
	sharedMu      sync.Mutex
	sharedHandles = make(map[Flag]*Magic)
)

func sharedHandle(flags Flag) (*Magic, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if m, ok := sharedHandles[flags]; ok {
		return m, nil
	}
	m, err := New(WithFlags(flags))
	if err != nil {
		return nil, err
	}
	sharedHandles[flags] = m
	return m, nil
}

// FromFile identifies the file at path and returns a TypeInfo carrying
// the textual description, ready for category predicates:
//
//	info, err := magickit.FromFile("report.docx")
//	if err == nil && info.IsWord() {
//	    // handle Word document
//	}
//
// The shared handle behind this function is created on first use and
// lives for the rest of the process.
func FromFile(path string) (TypeInfo, error) {
	m, err := sharedHandle(FlagNone)
	if err != nil {
		return TypeInfo{}, err
	}
	desc, err := m.File(path)
	if err != nil {
		return TypeInfo{}, err
	}
	return TypeInfo{Description: desc}, nil
}

// FromBuffer identifies in-memory content and returns a TypeInfo
// carrying the textual description.
func FromBuffer(data []byte) (TypeInfo, error) {
	m, err := sharedHandle(FlagNone)
	if err != nil {
		return TypeInfo{}, err
	}
	desc, err := m.Buffer(data)
	if err != nil {
		return TypeInfo{}, err
	}
	return TypeInfo{Description: desc}, nil
}

// MIMEFromFile returns the MIME type of the file at path,
// e.g. "application/pdf".
func MIMEFromFile(path string) (string, error) {
	m, err := sharedHandle(FlagMIMEType)
	if err != nil {
		return "", err
	}
	return m.File(path)
}

// MIMEFromBuffer returns the MIME type of in-memory content.
func MIMEFromBuffer(data []byte) (string, error) {
	m, err := sharedHandle(FlagMIMEType)
	if err != nil {
		return "", err
	}
	return m.Buffer(data)
}
