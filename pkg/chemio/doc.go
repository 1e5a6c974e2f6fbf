// Package chemio reads and writes molecules in the supported text formats.
//
// # Formats
//
// Four formats are registered:
//
//   - smiles: SMILES line notation (.smi, .smiles)
//   - cml: Chemical Markup Language (.cml)
//   - descriptor: layered linear descriptor (.mgd)
//   - json: the native graph format (.json)
//
// The three chemistry notations go through package babel's molecular model
// and the foreign-model import/export of package mol, so a file read through
// any of them arrives with hydrogens compressed and atoms untouched. The
// json format serializes the resonance forms directly, including implicit
// hydrogen counters, and is the only format that round-trips a multi-form
// molecule.
//
// # Detection
//
// [DetectFormat] maps a file extension to a format; [ReadFile] and
// [WriteFile] use it so callers can pass bare paths:
//
//	m, err := chemio.ReadFile("ethanol.smi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = chemio.WriteFile(m, "ethanol.cml")
package chemio
