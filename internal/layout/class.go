package layout

import "fmt"

// SizeClass is the discrete viewport width category
type SizeClass uint8

const (
	Mobile SizeClass = iota
	Tablet
	Desktop
	Large
)

// Width breakpoints, first match wins
const (
	// TabletWidth is the smallest width that is no longer mobile
	TabletWidth = 600
	// DesktopWidth is the smallest desktop width
	DesktopWidth = 1024
	// LargeWidth is the smallest large-screen width
	LargeWidth = 1600
)

// Classes lists every size class in ascending width order
var Classes = [...]SizeClass{Mobile, Tablet, Desktop, Large}

var classNames = [...]string{"mobile", "tablet", "desktop", "large"}

// Classify maps a viewport width to its size class
// Zero and negative widths fall into Mobile so a configuration always exists
func Classify(width int) SizeClass {
	switch {
	case width < TabletWidth:
		return Mobile
	case width < DesktopWidth:
		return Tablet
	case width < LargeWidth:
		return Desktop
	default:
		return Large
	}
}

func (c SizeClass) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("SizeClass(%d)", uint8(c))
}

// ParseClass returns the class with the given lowercase name
func ParseClass(name string) (SizeClass, error) {
	for i, n := range classNames {
		if n == name {
			return SizeClass(i), nil
		}
	}
	return 0, fmt.Errorf("unknown size class %q", name)
}
