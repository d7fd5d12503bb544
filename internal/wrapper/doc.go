// Package wrapper describes the external programs LICHEM drives and probes
// the host for them.
//
// A wrapper is either a QM package (PSI4, Gaussian, NWChem) or an MM package
// (TINKER, LAMMPS, AMBER). Each wrapper is detected through a single
// executable name; absence is reported with the [NotAvailable] sentinel and
// never as an error.
//
// # Name Resolution
//
// Command-line names are matched case-insensitively against each wrapper's
// aliases:
//
//	psi4, psi      -> PSI4
//	gaussian, g09  -> Gaussian
//	nwchem         -> NWChem
//	tinker         -> TINKER
//	lammps         -> LAMMPS
//	amber          -> AMBER
package wrapper
