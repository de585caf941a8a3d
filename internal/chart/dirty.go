package chart

// DirtyFlag signals that a newer chart image is on disk. It is only touched
// from the UI goroutine, so it carries no lock.
type DirtyFlag struct {
	set bool
}

// Set marks a new image as available
func (f *DirtyFlag) Set() {
	f.set = true
}

// Take reports whether a new image is available and clears the flag
func (f *DirtyFlag) Take() bool {
	was := f.set
	f.set = false
	return was
}
