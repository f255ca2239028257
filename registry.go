// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package charset

// Registry registers character set tables that can be encoded to and
// decoded from.
type Registry interface {
	Register(*Table) error
}

// RegisterAll registers every table, stopping at the first error.
func RegisterAll(r Registry, tables ...*Table) error {
	errs := Errs{}
	for _, t := range tables {
		errs.Add(r.Register(t))
		if errs.Errored() {
			break
		}
	}
	return errs.Err
}
