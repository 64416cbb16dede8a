// Package ftree provides the canonical fault-tree model types.
//
// This package contains type definitions and structural accessors only.
// All other internal packages import ftree; ftree imports nothing internal.
// This keeps the model the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - The caller-supplied Tree is immutable input; every derived entity
//     (GateRecord, Equation, CutSet) is a pure function of it.
//   - Event names are NFC-normalized on canonicalization, so the same
//     event spelled with different Unicode compositions is one variable.
//   - Gates are addressed by node ID, never by display name, to avoid
//     any dependence on name uniqueness or substring collisions.
package ftree
