// Package magickit is a cgo binding to the libmagic file identification
// library with a classification layer that buckets results into coarse
// file categories (word processor document, spreadsheet, archive,
// executable, ...).
//
// All content sniffing is delegated to libmagic; magickit marshals
// calls across the cgo boundary and pattern-matches the returned
// description strings. Building requires the libmagic headers
// (libmagic-dev / file-devel / libmagic on most systems).
//
// # Basic Usage
//
//	info, err := magickit.FromFile("quarterly.xlsx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(info.Description) // "Microsoft Excel 2007+"
//	fmt.Println(info.IsExcel())   // true
//	fmt.Println(info.Category())  // "excel"
//
//	mime, err := magickit.MIMEFromFile("quarterly.xlsx")
//	// "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
//
// # Handles
//
// The package-level functions share lazily created handles. For
// control over flags and databases, open your own:
//
//	m, err := magickit.New(
//	    magickit.WithUncompress(),
//	    magickit.WithDatabase("/opt/magic/custom.mgc"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
//
//	desc, err := m.Buffer(payload)
//
// A handle serializes calls into libmagic internally, so a single
// Magic can be shared between goroutines.
//
// # Classification
//
// [TypeInfo] answers category predicates by substring matching on the
// libmagic description, and [TypeInfo.Category] buckets it with a
// fixed first-match-wins order so narrow categories (Word, Excel) win
// over broad ones (text, zip):
//
//	info, _ := magickit.FromBuffer(data)
//	switch info.Category() {
//	case magickit.CategoryWord, magickit.CategoryPDF:
//	    archive(data)
//	case magickit.CategoryPE, magickit.CategoryLinuxExecutable:
//	    quarantine(data)
//	}
//
// # Scanning Directories
//
// [Scanner] walks a tree, classifies every regular file and tallies
// counts per category. Selectors filter what gets classified:
//
//	scanner := magickit.NewScanner(m,
//	    magickit.WithSelector(magickit.Not(magickit.Pattern("*.tmp"))),
//	)
//	result, err := scanner.Scan(ctx, "/srv/dropbox")
//	for category, n := range result.Tally {
//	    fmt.Printf("%s: %d\n", category, n)
//	}
//
// # Caching and Watching
//
// [CachingIdentifier] caches identification results keyed by content
// hash (buffers) or path+size+mtime (files). [Watcher] re-classifies
// files as they change on disk:
//
//	cached := magickit.NewCachingIdentifier(m, magickit.NewMemoryCache())
//	w, err := magickit.NewWatcher(cached)
//	w.Add("/srv/dropbox")
//	for ev := range w.Events() {
//	    log.Println(ev.Path, ev.Category)
//	}
//
// # Configuration
//
// magickit can be configured via environment variables with the
// MAGICKIT_ prefix, or programmatically via the [Config] struct:
//
//	cfg := magickit.Config{
//	    Database:     "/opt/magic/custom.mgc",
//	    Uncompress:   true,
//	    CacheEnabled: true,
//	}
//	ident, err := magickit.NewFromConfig(&cfg)
package magickit
