package palette

// NextFocusSlot decides which color slot a restored draft should focus:
// the first empty slot after the last non-empty slot, the last slot when
// every slot is filled, or the first slot when none are. The returned slot
// is 1-based; ok is false when there are no slots at all.
func NextFocusSlot(colors []string) (slot int, ok bool) {
	if len(colors) == 0 {
		return 0, false
	}

	lastFilled := -1
	for i, c := range colors {
		if c != "" {
			lastFilled = i
		}
	}

	switch {
	case lastFilled == -1:
		return 1, true
	case lastFilled == len(colors)-1:
		return len(colors), true
	default:
		return lastFilled + 2, true
	}
}
