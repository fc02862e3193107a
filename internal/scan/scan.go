package scan

import (
	"context"
	"regexp"
	"strings"

	"github.com/vk/refgraph/internal/ctxlog"
	"github.com/vk/refgraph/internal/latex"
	"github.com/vk/refgraph/internal/scanconfig"
)

// Reference links the label of the block where a cross-reference occurs to
// the label it points at. From is empty until scope resolution assigns it; a
// reference that never gains a From is an orphan and is dropped by the graph
// assembler. To is never empty.
type Reference struct {
	From string
	To   string
}

// Walker applies a scan configuration to parsed LaTeX trees.
type Walker struct {
	cfg *scanconfig.Config
}

// New returns a Walker using the given scan configuration.
func New(cfg *scanconfig.Config) *Walker {
	return &Walker{cfg: cfg}
}

// targetSplitter separates the comma-and-optional-whitespace delimited
// targets of a single reference macro argument.
var targetSplitter = regexp.MustCompile(`,\s*`)

// Walk scans nodes in document order, resolving each found reference's
// origin label. enclosing is the label handed down by the caller; the root
// call passes "". It returns the label this node list resolves to and every
// reference found beneath it.
func (w *Walker) Walk(ctx context.Context, nodes []latex.Node, enclosing string) (string, []Reference) {
	logger := ctxlog.FromContext(ctx)

	label := enclosing
	var localRefs []Reference
	var bubbled []Reference
	lastSeen := ""

	for _, n := range nodes {
		switch node := n.(type) {
		case *latex.Macro:
			switch {
			case node.Name == w.cfg.LabelMacro:
				if label != "" {
					break
				}
				decl := strings.TrimSpace(node.FirstArgText())
				if decl == "" {
					logger.Warn("Ignoring label declaration with empty name.")
					break
				}
				label = decl
			case w.cfg.IsReferenceMacro(node.Name):
				targets, dropped := splitTargets(node.FirstArgText())
				if dropped > 0 {
					logger.Warn("Dropping empty reference targets.", "macro", node.Name, "dropped", dropped)
				}
				// The last seen sibling label is only a provisional parent;
				// the level's own label overrides it below once known.
				for _, target := range targets {
					localRefs = append(localRefs, Reference{From: lastSeen, To: target})
				}
			default:
				// References can hide inside the arguments of unrelated
				// macros (\footnote and friends).
				for _, arg := range node.Args {
					_, nested := w.Walk(ctx, arg.Children, lastSeen)
					bubbled = append(bubbled, nested...)
				}
			}
		case *latex.Environment:
			if w.cfg.IsMainEnvironment(node.Name) {
				resolved, nested := w.Walk(ctx, node.Children, "")
				lastSeen = resolved
				bubbled = append(bubbled, nested...)
			} else {
				_, nested := w.Walk(ctx, node.Children, lastSeen)
				bubbled = append(bubbled, nested...)
			}
		case *latex.Group:
			_, nested := w.Walk(ctx, node.Children, lastSeen)
			bubbled = append(bubbled, nested...)
		}
	}

	localRefs = dedupeRefs(localRefs)
	if label != "" {
		// References found directly at this level belong to the level's own
		// label, regardless of any sibling label seen along the way.
		for i := range localRefs {
			localRefs[i].From = label
		}
	}
	bubbled = append(bubbled, localRefs...)
	// Second fixup: references bubbled up from unlabeled containers were
	// created before this level's label was known.
	for i := range bubbled {
		if bubbled[i].From == "" {
			bubbled[i].From = label
		}
	}
	return label, bubbled
}

// splitTargets breaks a reference macro argument into individual label
// targets. Empty entries (an empty argument, stray commas) are counted and
// dropped rather than fabricated into labels.
func splitTargets(arg string) (targets []string, dropped int) {
	for _, t := range targetSplitter.Split(arg, -1) {
		t = strings.TrimSpace(t)
		if t == "" {
			dropped++
			continue
		}
		targets = append(targets, t)
	}
	return targets, dropped
}

// dedupeRefs removes value-identical references declared at the same level,
// preserving first-seen order. Cross-level duplicates are collapsed later by
// the graph assembler.
func dedupeRefs(refs []Reference) []Reference {
	if len(refs) < 2 {
		return refs
	}
	seen := make(map[Reference]struct{}, len(refs))
	out := make([]Reference, 0, len(refs))
	for _, r := range refs {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
