// Command odispatch assembles an exact-type injector registry from a YAML
// bindings manifest and dispatches example components through it.
//
// Usage
//
//	odispatch --manifest bindings.yaml keys
//	odispatch --manifest bindings.yaml inject user basket admin
//	odispatch --manifest bindings.yaml explain admin
//
// Configuration
//
// Every persistent flag can also be set through the environment with the
// ODISPATCH_ prefix (dashes become underscores):
//
//	ODISPATCH_MANIFEST=bindings.yaml ODISPATCH_LOG_LEVEL=debug odispatch keys
//
// Flags win over the environment; defaults apply last.
//
// Manifest
//
//	bindings:
//	  - type: base
//	  - type: user
//	  - type: admin
//	    factory: user   # bound under admin's key, injects users: reported as a mismatch
//
// inject exits non-zero if any dispatch fails. explain never fails for a
// known component; it prints either the binding or the diagnostic that
// inject would report.
package main
