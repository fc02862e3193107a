// Package scan implements the scope-aware reference extractor, the core of
// refgraph.
//
// # What a scan produces
//
// Walk turns a parsed LaTeX node tree into Reference records, each linking
// the label of the block where a cross-reference macro occurs (From) to the
// label it points at (To). A single macro invocation may point at several
// targets at once (\cref{a,b}); each target becomes its own record.
//
// # Scope rules
//
// The subtlety is deciding which label a reference belongs to. Walk applies
// the following rules, expressed as a pure recursive function returning
// (resolved label, references) so no scope state leaks across sibling
// subtrees:
//
//   - A label declaration (\label{...}) names the node list it appears in.
//     Only the first declaration at a level counts, and a label handed down
//     by the caller is never overwritten by an inner declaration.
//   - A main (theorem-like) environment opens a fresh scope: its body may
//     declare its own label, and that label becomes the "last seen" label at
//     the enclosing level.
//   - Any other container (plain groups, non-main environments, macro
//     arguments) inherits the last seen label as its default parent. Its own
//     resolved label, if any, does not escape.
//   - A bare reference at a level that never resolves its own label is
//     parented to the most recent main-environment label among its preceding
//     siblings, so prose following a theorem still attributes to it.
//   - References found before the level's label is known are filled in once
//     the full node list has been processed. The fixup runs over everything
//     bubbled up from child calls too, so references created deep inside
//     unlabeled containers still inherit the first labeled ancestor.
//
// A reference with no labeled ancestor at all keeps an empty From. That is
// not an error; the graph assembler drops such orphans.
package scan
