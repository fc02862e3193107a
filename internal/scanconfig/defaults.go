package scanconfig

const defaultLabelMacro = "label"

func defaultReferenceMacros() []string {
	return []string{"cref", "eqref", "ref", "vref"}
}

// mainEnvironmentBases lists the theorem-like environment kinds recognized
// out of the box, singular and plural. Each also has a starred (unnumbered)
// variant.
var mainEnvironmentBases = []string{
	"assertion", "assertions",
	"axiom", "axioms",
	"conjecture", "conjectures",
	"convention", "conventions",
	"corollaries", "corollary",
	"definition", "definitions",
	"example", "examples",
	"exercise", "exercises",
	"lemma", "lemmas",
	"notation", "notations",
	"properties", "property",
	"proposition", "propositions",
	"question", "questions",
	"remark", "remarks",
	"reminder", "reminders",
	"scholia", "scholias",
	"terminologies", "terminology",
	"theorem", "theorems",
}

func defaultMainEnvironments() []string {
	out := make([]string, 0, len(mainEnvironmentBases)*2)
	for _, base := range mainEnvironmentBases {
		out = append(out, base, base+"*")
	}
	return out
}
