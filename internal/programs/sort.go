package programs

import (
	"slices"
	"strings"

	"regtools/internal/model"
)

// SortByName orders programs by display name ignoring case. Ties keep their scan order.
func SortByName(programs []model.InstalledProgram) {
	slices.SortStableFunc(programs, func(a, b model.InstalledProgram) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}
