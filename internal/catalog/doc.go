// Package catalog holds the regression scenarios run against lichem.
//
// The default catalog is embedded from catalog.yaml. It is decoded with
// strict field checking, unified with the CUE schema in schema.cue and then
// checked for references: every engine a scenario applies to must have a
// reference value.
//
// # Scenario Format
//
//	- name: PBE0/TIP3P energy
//	  structure: waterdimer.xyz
//	  region: pchrgreg.inp
//	  config: watercon.inp
//	  mm: [TINKER]                 # omit for "any"
//	  stage:
//	    - {from: pchrg.key, to: tinker.key}
//	  extract: {mode: scalar, label: "QMMM energy:", field: 2}
//	  reference_by: qm             # which engine the value depends on
//	  reference:
//	    PSI4: -2077.2021947277
//
// Declaration order is execution order. Scenarios sharing a working
// directory may see files left by earlier ones, so a scenario that needs a
// key or basis file always stages it itself.
package catalog
