// Package slot defines the booking times offered on the reservation form.
package slot

import (
	"slices"
	"time"

	"latina/shared/constant"
)

const (
	First = "12:30"
	Last  = "23:00"
	Step  = 30 * time.Minute
)

var slots = generate()

func generate() []string {
	first, _ := time.Parse(constant.SlotFormat, First)
	last, _ := time.Parse(constant.SlotFormat, Last)

	out := []string{}
	for at := first; !at.After(last); at = at.Add(Step) {
		out = append(out, at.Format(constant.SlotFormat))
	}

	return out
}

// All returns the slots in order. The list is the same for every day and
// every language.
func All() []string {
	return slices.Clone(slots)
}

// Contains reports whether value is one of the offered slots.
func Contains(value string) bool {
	_, found := slices.BinarySearch(slots, value)

	return found
}
