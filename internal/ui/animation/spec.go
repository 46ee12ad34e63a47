package animation

import "fyne.io/fyne/v2"

// IdleSpec defines sprites used for the mascot's idle blinking.
type IdleSpec struct {
	Open   fyne.Resource
	Closed fyne.Resource
}

// WaterSpec defines the frames flashed by a water reminder.
type WaterSpec struct {
	Full  fyne.Resource
	Empty fyne.Resource
}
