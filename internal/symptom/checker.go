// Package symptom implements the checklist-based symptom checker: a
// toggled selection set and an ordered combination-rule list mapping
// selections to an advisory.
package symptom

import (
	"errors"
	"time"
)

// AnalyzeDelay is how long the UI waits before revealing the advisory,
// imitating analysis work. The engine resolves synchronously.
const AnalyzeDelay = 2 * time.Second

// ErrNoSymptoms is returned when Analyze is called with nothing
// selected. It surfaces as a blocking user-visible notice.
var ErrNoSymptoms = errors.New("please select at least one symptom")

// Catalogue lists the selectable symptoms in display order.
var Catalogue = []string{
	"Fever",
	"Cough",
	"Headache",
	"Nausea",
	"Fatigue",
	"Sore Throat",
	"Rash",
	"Dizziness",
}

// A combination maps a set of co-selected symptoms to an advisory.
// Combinations are evaluated in order and the first whose symptoms are
// all selected wins; they are not mutually exclusive, so the order is
// part of the contract.
type combination struct {
	symptoms []string
	advisory string
}

var combinations = []combination{
	{
		symptoms: []string{"Fever", "Cough"},
		advisory: "The combination of Fever and Cough suggests a respiratory infection like the Flu or a cold. Monitor your breathing and rest.",
	},
	{
		symptoms: []string{"Headache", "Nausea"},
		advisory: "Headache and Nausea can sometimes indicate a migraine or dehydration. Ensure you are getting electrolytes.",
	},
}

const genericAdvisory = "Based on your selection, you might be experiencing a common seasonal illness."

// Checker holds the selected-symptom set. Selection order is retained
// for display. There is no clear operation; the set lives as long as
// the process, like the original page state.
type Checker struct {
	selected []string
}

// Toggle adds the symptom to the selection, or removes it when already
// selected. Toggling twice restores the original set.
func (c *Checker) Toggle(symptom string) {
	for i, s := range c.selected {
		if s == symptom {
			c.selected = append(c.selected[:i], c.selected[i+1:]...)
			return
		}
	}
	c.selected = append(c.selected, symptom)
}

// IsSelected reports whether the symptom is currently selected.
func (c *Checker) IsSelected(symptom string) bool {
	for _, s := range c.selected {
		if s == symptom {
			return true
		}
	}
	return false
}

// Selected returns a copy of the selection in toggle order.
func (c *Checker) Selected() []string {
	out := make([]string, len(c.selected))
	copy(out, c.selected)
	return out
}

// Analyze resolves the advisory for the current selection, or
// ErrNoSymptoms when nothing is selected.
func (c *Checker) Analyze() (string, error) {
	return Analyze(c.selected)
}

// Analyze maps a selection to its advisory via the ordered combination
// rules.
func Analyze(selected []string) (string, error) {
	if len(selected) == 0 {
		return "", ErrNoSymptoms
	}

	has := func(symptom string) bool {
		for _, s := range selected {
			if s == symptom {
				return true
			}
		}
		return false
	}

	for _, combo := range combinations {
		matched := true
		for _, s := range combo.symptoms {
			if !has(s) {
				matched = false
				break
			}
		}
		if matched {
			return combo.advisory, nil
		}
	}
	return genericAdvisory, nil
}
