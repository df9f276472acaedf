package types

import "fmt"

// Descriptor identifies a package manager together with the range, tag,
// or URL selecting which build of it a project wants. Range keeps the
// declared value verbatim, so an exact version with a trailing hash
// suffix survives a parse/format round trip.
type Descriptor struct {
	Name  string
	Range string
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s@%s", d.Name, d.Range)
}

type Locator struct {
	Name      string
	Reference string
}

// PreparedPackageManagerInfo is handed back by the download side once a
// manager build is materialized on disk and ready to pin.
type PreparedPackageManagerInfo struct {
	Locator Locator
}
