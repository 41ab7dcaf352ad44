// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package person

import "sort"

// MARC relator codes supported by the contribution form. The set is a
// curated subset of the Library of Congress relator list, covering the
// roles that actually occur in the collection.
const (
	RelatorAuthor = "aut"
)

// relatorLabels maps each supported code to its display label.
var relatorLabels = map[string]string{
	"art": "Artist",
	"aut": "Author",
	"cli": "Client",
	"col": "Collector",
	"com": "Compiler",
	"con": "Conservator",
	"csp": "Consultant",
	"ctb": "Contributor",
	"cur": "Curator",
	"dnr": "Donor",
	"dpc": "Depicted",
	"drm": "Draftsman",
	"dst": "Distributor",
	"edt": "Editor",
	"egr": "Engraver",
	"fmo": "Former owner",
	"his": "Host institution",
	"ill": "Illustrator",
	"ilu": "Illuminator",
	"ive": "Interviewee",
	"ivr": "Interviewer",
	"orm": "Organizer",
	"own": "Owner",
	"pht": "Photographer",
	"prv": "Provider",
	"res": "Researcher",
	"rps": "Repository",
	"scr": "Scribe",
	"trc": "Transcriber",
	"trl": "Translator",
}

// RelatorLabel returns the display label for a relator code.
func RelatorLabel(code string) (string, bool) {
	label, ok := relatorLabels[code]
	return label, ok
}

// IsRelator reports whether the code belongs to the supported set.
func IsRelator(code string) bool {
	_, ok := relatorLabels[code]
	return ok
}

// Relator pairs a code with its label for form option lists.
type Relator struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Relators returns the full supported set ordered by label.
func Relators() []Relator {
	relators := make([]Relator, 0, len(relatorLabels))
	for code, label := range relatorLabels {
		relators = append(relators, Relator{Code: code, Label: label})
	}
	sort.Slice(relators, func(i, j int) bool {
		return relators[i].Label < relators[j].Label
	})
	return relators
}
